package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListMidiFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mid", "a.MIDI", "notes.txt", "c.mid.bak"} {
		os.WriteFile(filepath.Join(dir, name), []byte("x"), 0666)
	}
	os.Mkdir(filepath.Join(dir, "nested.mid"), 0777)

	files, err := ListMidiFiles(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"a.MIDI", "b.mid"}, files)
}

func TestListMidiFilesMissingDir(t *testing.T) {
	_, err := ListMidiFiles("/does/not/exist")
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Acoustic_Piano", SanitizeFilename("Acoustic Piano"))
	assert.Equal("a-b-c", SanitizeFilename(`a/b\c`))
	assert.Equal("what-", SanitizeFilename("what?"))

	long := strings.Repeat("x", 300)
	assert.Len(SanitizeFilename(long), 200)
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(4, 2))
	assert.Equal(2, Min(2, 4))
}
