package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// ShareCodeLength is the number of characters in a share code
const ShareCodeLength = 8

const (
	sharePrefix       = "share:"
	shareSourcePrefix = "share-source:"
	shareAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shareCodeAttempts = 5
)

// ShareInput describes a résumé to publish. A zero TTL never expires.
type ShareInput struct {
	Source   string
	Title    string
	Content  string
	Template string
	TTL      time.Duration
}

// Shares publishes résumés under short codes in a Store. Each source has at most
// one live share.
type Shares struct {
	store   Store
	now     func() time.Time
	newCode func() string
}

// NewShares wraps store
func NewShares(store Store) *Shares {
	return &Shares{store: store, now: time.Now, newCode: newShareCode}
}

// Create publishes in under a fresh code. When in.Source already has a live
// share, that share is returned unchanged.
func (s *Shares) Create(ctx context.Context, in ShareInput) (types.SharedResume, error) {
	if strings.TrimSpace(in.Content) == "" {
		return types.SharedResume{}, fmt.Errorf("share content is empty")
	}

	if in.Source != "" {
		code, err := s.store.Get(ctx, shareSourcePrefix+in.Source)
		switch {
		case err == nil:
			existing, err := s.Lookup(ctx, string(code), false)
			if err == nil {
				return existing, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return types.SharedResume{}, err
			}
		case !errors.Is(err, ErrNotFound):
			return types.SharedResume{}, err
		}
	}

	code, err := s.unusedCode(ctx)
	if err != nil {
		return types.SharedResume{}, err
	}

	now := s.now().UTC()
	share := types.SharedResume{
		ID:        uuid.NewString(),
		Code:      code,
		Source:    in.Source,
		Title:     in.Title,
		Content:   in.Content,
		Template:  in.Template,
		CreatedAt: now,
	}
	if in.TTL > 0 {
		expires := now.Add(in.TTL)
		share.ExpiresAt = &expires
	}

	if err := s.put(ctx, share); err != nil {
		return types.SharedResume{}, err
	}
	if in.Source != "" {
		if err := s.store.Set(ctx, shareSourcePrefix+in.Source, []byte(code)); err != nil {
			return types.SharedResume{}, err
		}
	}
	return share, nil
}

// Lookup returns the share under code, or ErrNotFound. Expired shares are
// removed and reported as ErrNotFound. With countView the view count is
// incremented and stored.
func (s *Shares) Lookup(ctx context.Context, code string, countView bool) (types.SharedResume, error) {
	data, err := s.store.Get(ctx, sharePrefix+code)
	if err != nil {
		return types.SharedResume{}, err
	}
	var share types.SharedResume
	if err := json.Unmarshal(data, &share); err != nil {
		return types.SharedResume{}, fmt.Errorf("failed to decode share %s: %w", code, err)
	}

	if share.Expired(s.now()) {
		if err := s.remove(ctx, share); err != nil {
			return types.SharedResume{}, err
		}
		return types.SharedResume{}, ErrNotFound
	}

	if countView {
		share.ViewCount++
		if err := s.put(ctx, share); err != nil {
			return types.SharedResume{}, err
		}
	}
	return share, nil
}

// Delete removes the share under code. A missing code is ErrNotFound.
func (s *Shares) Delete(ctx context.Context, code string) error {
	share, err := s.Lookup(ctx, code, false)
	if err != nil {
		return err
	}
	return s.remove(ctx, share)
}

func (s *Shares) put(ctx context.Context, share types.SharedResume) error {
	data, err := json.Marshal(share)
	if err != nil {
		return fmt.Errorf("failed to marshal share: %w", err)
	}
	return s.store.Set(ctx, sharePrefix+share.Code, data)
}

func (s *Shares) remove(ctx context.Context, share types.SharedResume) error {
	if err := s.store.Delete(ctx, sharePrefix+share.Code); err != nil {
		return err
	}
	if share.Source == "" {
		return nil
	}
	return s.store.Delete(ctx, shareSourcePrefix+share.Source)
}

func (s *Shares) unusedCode(ctx context.Context) (string, error) {
	for range shareCodeAttempts {
		code := s.newCode()
		_, err := s.store.Get(ctx, sharePrefix+code)
		if errors.Is(err, ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no unused share code after %d attempts", shareCodeAttempts)
}

// newShareCode draws ShareCodeLength alphanumeric characters from a random UUID.
func newShareCode() string {
	id := uuid.New()
	code := make([]byte, ShareCodeLength)
	for i := range code {
		code[i] = shareAlphabet[int(id[i])%len(shareAlphabet)]
	}
	return string(code)
}
