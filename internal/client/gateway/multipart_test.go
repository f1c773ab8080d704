package gateway

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsePayload parses an assembled payload back into a multipart form.
func parsePayload(t *testing.T, payload *MultipartPayload) *multipart.Form {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(payload.ContentType())
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(payload.Reader(), params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form
}

func TestNewMultipartPayload_Fields(t *testing.T) {
	payload, err := NewMultipartPayload(map[string]any{
		"name":  "Running shoes",
		"price": 49.99,
		"stock": 12,
	}, nil)
	require.NoError(t, err)

	form := parsePayload(t, payload)
	defer func() { _ = form.RemoveAll() }()

	assert.Equal(t, []string{"Running shoes"}, form.Value["name"])
	assert.Equal(t, []string{"49.99"}, form.Value["price"])
	assert.Equal(t, []string{"12"}, form.Value["stock"])
	assert.Empty(t, form.File, "no attachment part without a file")
}

func TestNewMultipartPayload_SkipsNilValues(t *testing.T) {
	payload, err := NewMultipartPayload(map[string]any{
		"name":        "Shelf",
		"description": nil,
	}, nil)
	require.NoError(t, err)

	form := parsePayload(t, payload)
	defer func() { _ = form.RemoveAll() }()

	assert.Contains(t, form.Value, "name")
	assert.NotContains(t, form.Value, "description")
}

func TestNewMultipartPayload_Attachment(t *testing.T) {
	payload, err := NewMultipartPayload(map[string]any{"name": "Shelf"}, &FileAttachment{
		Filename: "shelf.jpg",
		Reader:   strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)

	form := parsePayload(t, payload)
	defer func() { _ = form.RemoveAll() }()

	// The binary part rides under the fixed "image" field.
	files := form.File["image"]
	require.Len(t, files, 1)
	assert.Equal(t, "shelf.jpg", files[0].Filename)

	f, err := files[0].Open()
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	contents, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(contents))
}
