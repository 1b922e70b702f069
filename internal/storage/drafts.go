package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultDraftKey is the autosave slot used when the caller names none
const DefaultDraftKey = "resume-ai-autosave"

const recordPrefix = "record:"

// Drafts stores autosave drafts and résumé records as JSON in a Store.
type Drafts struct {
	store Store
	now   func() time.Time
}

// NewDrafts wraps store
func NewDrafts(store Store) *Drafts {
	return &Drafts{store: store, now: time.Now}
}

// Save stamps draft with the current time and stores it. An empty draft (no
// résumé and at most the greeting) is not saved and Save reports false. A draft
// failing the draft schema, such as one with an unknown message role, is rejected.
func (d *Drafts) Save(ctx context.Context, key string, draft types.Draft) (bool, error) {
	if draft.IsEmpty() {
		return false, nil
	}
	draft.Timestamp = d.now().UnixMilli()
	if draft.Messages == nil {
		draft.Messages = []types.ChatMessage{}
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return false, fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := schemas.ValidateDraftJSON(data); err != nil {
		return false, err
	}
	if err := d.store.Set(ctx, key, data); err != nil {
		return false, err
	}
	return true, nil
}

// Load returns the draft under key, or ErrNotFound. Stored JSON that fails the
// draft schema is reported as a *schemas.ValidationError.
func (d *Drafts) Load(ctx context.Context, key string) (types.Draft, error) {
	data, err := d.store.Get(ctx, key)
	if err != nil {
		return types.Draft{}, err
	}
	if err := schemas.ValidateDraftJSON(data); err != nil {
		return types.Draft{}, fmt.Errorf("stored draft %s: %w", key, err)
	}
	var draft types.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return types.Draft{}, fmt.Errorf("failed to decode draft %s: %w", key, err)
	}
	return draft, nil
}

// Clear removes the draft under key.
func (d *Drafts) Clear(ctx context.Context, key string) error {
	return d.store.Delete(ctx, key)
}

// SaveRecord stores a record under key. Records live in their own key space.
func (d *Drafts) SaveRecord(ctx context.Context, key string, rec types.ResumeRecord) error {
	rec = rec.Clone()
	rec.Normalize()
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return d.store.Set(ctx, recordPrefix+key, data)
}

// LoadRecord returns the record under key. Stored JSON that fails the record
// schema is reported as a *schemas.ValidationError.
func (d *Drafts) LoadRecord(ctx context.Context, key string) (types.ResumeRecord, error) {
	data, err := d.store.Get(ctx, recordPrefix+key)
	if err != nil {
		return types.ResumeRecord{}, err
	}
	if err := schemas.ValidateRecordJSON(data); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("stored record %s: %w", key, err)
	}
	var rec types.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	rec.Normalize()
	return rec, nil
}

// ClearRecord removes the record under key.
func (d *Drafts) ClearRecord(ctx context.Context, key string) error {
	return d.store.Delete(ctx, recordPrefix+key)
}
