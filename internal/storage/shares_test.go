package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShares() (*Shares, *time.Time) {
	clock := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s := NewShares(NewMemoryStore())
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestShares_CreateLookupDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newShares()

	share, err := s.Create(ctx, ShareInput{Source: "cv", Title: "张三的简历", Content: "张三\n电话：13800000000"})
	require.NoError(t, err)
	assert.Len(t, share.Code, ShareCodeLength)
	assert.NotEmpty(t, share.ID)
	assert.Nil(t, share.ExpiresAt)
	assert.Equal(t, 0, share.ViewCount)

	got, err := s.Lookup(ctx, share.Code, true)
	require.NoError(t, err)
	assert.Equal(t, "张三的简历", got.Title)
	assert.Equal(t, 1, got.ViewCount)

	got, err = s.Lookup(ctx, share.Code, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)

	require.NoError(t, s.Delete(ctx, share.Code))
	_, err = s.Lookup(ctx, share.Code, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, share.Code), ErrNotFound)
}

func TestShares_SameSourceReusesShare(t *testing.T) {
	ctx := context.Background()
	s, _ := newShares()

	first, err := s.Create(ctx, ShareInput{Source: "cv", Content: "一"})
	require.NoError(t, err)
	again, err := s.Create(ctx, ShareInput{Source: "cv", Content: "二"})
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other, err := s.Create(ctx, ShareInput{Source: "other", Content: "三"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, other.Code)

	require.NoError(t, s.Delete(ctx, first.Code))
	fresh, err := s.Create(ctx, ShareInput{Source: "cv", Content: "四"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, fresh.Code)
	assert.Equal(t, "四", fresh.Content)
}

func TestShares_Expiry(t *testing.T) {
	ctx := context.Background()
	s, clock := newShares()

	share, err := s.Create(ctx, ShareInput{Source: "cv", Content: "张三", TTL: time.Hour})
	require.NoError(t, err)
	require.NotNil(t, share.ExpiresAt)

	*clock = clock.Add(59 * time.Minute)
	_, err = s.Lookup(ctx, share.Code, false)
	require.NoError(t, err)

	*clock = clock.Add(time.Minute)
	_, err = s.Lookup(ctx, share.Code, false)
	assert.ErrorIs(t, err, ErrNotFound)

	renewed, err := s.Create(ctx, ShareInput{Source: "cv", Content: "张三"})
	require.NoError(t, err)
	assert.NotEqual(t, share.Code, renewed.Code)
}

func TestShares_Validation(t *testing.T) {
	ctx := context.Background()
	s, _ := newShares()

	_, err := s.Create(ctx, ShareInput{Source: "cv", Content: "  "})
	assert.Error(t, err)

	s.newCode = func() string { return "AAAAAAAA" }
	_, err = s.Create(ctx, ShareInput{Content: "一"})
	require.NoError(t, err)
	_, err = s.Create(ctx, ShareInput{Content: "二"})
	assert.ErrorContains(t, err, "no unused share code")
}

func TestNewShareCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		code := newShareCode()
		require.Len(t, code, ShareCodeLength)
		for _, r := range code {
			assert.Contains(t, shareAlphabet, string(r))
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 95)
}
