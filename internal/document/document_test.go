package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes_PlainText(t *testing.T) {
	text, err := FromBytes([]byte("  Experienced developer\n"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Experienced developer", text)
}

func TestFromBytes_UnsupportedExtension(t *testing.T) {
	_, err := FromBytes([]byte("data"), "resume.odt")
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".odt", unsupported.Extension)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestFromBytes_EmptyDocument(t *testing.T) {
	_, err := FromBytes([]byte("   \n  "), "resume.txt")
	require.Error(t, err)

	var extraction *ExtractionError
	require.True(t, errors.As(err, &extraction))
	assert.Equal(t, "resume.txt", extraction.Filename)
}

func TestFromBytes_CorruptPDF(t *testing.T) {
	_, err := FromBytes([]byte("not a pdf at all"), "resume.pdf")
	require.Error(t, err)

	var extraction *ExtractionError
	assert.True(t, errors.As(err, &extraction))
}

func TestFromBytes_CorruptDocx(t *testing.T) {
	_, err := FromBytes([]byte("not a docx"), "resume.docx")
	require.Error(t, err)

	var extraction *ExtractionError
	assert.True(t, errors.As(err, &extraction))
}

func TestFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Python developer", text)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var extraction *ExtractionError
	require.True(t, errors.As(err, &extraction))
	assert.Equal(t, "missing.txt", extraction.Filename)
}

func TestFromBytes_ExtensionCaseInsensitive(t *testing.T) {
	text, err := FromBytes([]byte("content"), "RESUME.TXT")
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}
