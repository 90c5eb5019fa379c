package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageMIMEByExtension(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":  "image/jpeg",
		"photo.JPEG": "image/jpeg",
		"shot.png":   "image/png",
		"anim.gif":   "image/gif",
		"pic.webp":   "image/webp",
		"live.heic":  "image/heic",
	}
	for path, want := range cases {
		got, err := imageMIME(path, nil)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestImageMIMESniffsUnknownExtension(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n")
	got, err := imageMIME("download.bin", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)
}

func TestImageMIMERejectsNonImage(t *testing.T) {
	_, err := imageMIME("notes.txt", []byte("just some text"))
	assert.ErrorContains(t, err, "supported image")
}
