package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
	"unicode/utf8"
)

// Upload limits
const (
	MinUploadRunes = 50
	MaxUploadRunes = 10000
	TruncatedNote  = "\n...(内容已截断)"
)

// ErrTooShort is returned for uploads with too little text to be a résumé.
var ErrTooShort = errors.New("resume text too short")

// Upload is cleaned upload text plus what is known about it.
type Upload struct {
	Text      string `json:"text"`
	Runes     int    `json:"runes"`
	Truncated bool   `json:"truncated"`
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Timestamp string `json:"timestamp"` // RFC3339
}

// PrepareUpload cleans extracted upload text, rejects short input and truncates
// long input with a visible note.
func PrepareUpload(raw string) (*Upload, error) {
	text := CleanText(raw)
	runes := utf8.RuneCountInString(text)
	if runes < MinUploadRunes {
		return nil, ErrTooShort
	}

	up := &Upload{
		Hash:      computeHash(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Runes:     runes,
	}
	if runes > MaxUploadRunes {
		text = Clip(text, MaxUploadRunes) + TruncatedNote
		up.Truncated = true
	}
	up.Text = text
	return up, nil
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
