package render

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_PNG(t *testing.T) {
	renderer := NewRenderer(300)

	png, err := renderer.PNG("SPC\n0200\n1\nCH9300762011623852957")

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestRenderer_DataURI(t *testing.T) {
	renderer := NewRenderer(0) // falls back to the default size

	uri, err := renderer.DataURI("CH9300762011623852957")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	assert.NoError(t, err)
	assert.NotEmpty(t, decoded)
}

func TestRenderer_ContentTooLong(t *testing.T) {
	renderer := NewRenderer(300)

	_, err := renderer.DataURI(strings.Repeat("x", 10_000))

	assert.Error(t, err)
}
