package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeType(t *testing.T) {
	allowed := []string{MimePDF, "application/zip", MimeOctetStream}

	t.Run("pdf magic accepted", func(t *testing.T) {
		mime, err := ValidateMimeType(bytes.NewReader([]byte("%PDF-1.7 content")), allowed)
		require.NoError(t, err)
		assert.Equal(t, MimePDF, mime)
	})

	t.Run("zip container accepted", func(t *testing.T) {
		mime, err := ValidateMimeType(bytes.NewReader([]byte("PK\x03\x04rest")), allowed)
		require.NoError(t, err)
		assert.Equal(t, "application/zip", mime)
	})

	t.Run("plain text rejected", func(t *testing.T) {
		_, err := ValidateMimeType(bytes.NewReader([]byte("just some text")), allowed)
		assert.Error(t, err)
	})

	t.Run("html rejected", func(t *testing.T) {
		_, err := ValidateMimeType(bytes.NewReader([]byte("<html><body>x</body></html>")), allowed)
		assert.Error(t, err)
	})
}

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("resume.pdf", AllowedResumeExtensions))
	assert.True(t, HasAllowedExtension("RESUME.DOCX", AllowedResumeExtensions))
	assert.False(t, HasAllowedExtension("resume.exe", AllowedResumeExtensions))
	assert.False(t, HasAllowedExtension("resume", AllowedResumeExtensions))
}
