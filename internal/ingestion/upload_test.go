package ingestion

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareUpload_TooShort(t *testing.T) {
	_, err := PrepareUpload("张三\n电话：138")
	assert.ErrorIs(t, err, ErrTooShort)

	// Whitespace does not count toward the minimum.
	_, err = PrepareUpload(strings.Repeat(" \n", 100) + "张三")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestPrepareUpload_Accepts(t *testing.T) {
	raw := "张三\r\n" + strings.Repeat("熟悉Go语言开发", 10)

	up, err := PrepareUpload(raw)
	require.NoError(t, err)

	assert.False(t, up.Truncated)
	assert.Equal(t, CleanText(raw), up.Text)
	assert.Equal(t, utf8.RuneCountInString(up.Text), up.Runes)
	assert.Len(t, up.Hash, 64)
	assert.NotEmpty(t, up.Timestamp)
}

func TestPrepareUpload_Truncates(t *testing.T) {
	raw := strings.Repeat("简", MaxUploadRunes+500)

	up, err := PrepareUpload(raw)
	require.NoError(t, err)

	assert.True(t, up.Truncated)
	assert.Equal(t, MaxUploadRunes+500, up.Runes)
	assert.True(t, strings.HasSuffix(up.Text, TruncatedNote))
	assert.Equal(t, MaxUploadRunes+utf8.RuneCountInString(TruncatedNote), utf8.RuneCountInString(up.Text))
}

func TestComputeHash(t *testing.T) {
	assert.Equal(t, computeHash("张三"), computeHash("张三"))
	assert.NotEqual(t, computeHash("张三"), computeHash("李四"))
}
