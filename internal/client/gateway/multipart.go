package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// attachmentField is the fixed form field name the backend expects binary
// uploads under.
const attachmentField = "image"

// FileAttachment is a single named binary part of a multipart payload.
type FileAttachment struct {
	Filename string
	Reader   io.Reader
}

// MultipartPayload is a fully assembled multipart/form-data body. It
// carries its own boundary-bearing content type; the gateway uses that
// type verbatim instead of negotiating one.
type MultipartPayload struct {
	buf         bytes.Buffer
	contentType string
}

// NewMultipartPayload assembles a multipart body from a flat key/value
// mapping plus an optional binary attachment. Entries whose value is nil
// are skipped, and the attachment part is appended under the fixed
// "image" field only when a file is actually supplied. Updates without
// a new file must not go through here at all: they are sent as plain JSON
// so the server keeps the existing image.
func NewMultipartPayload(fields map[string]any, file *FileAttachment) (*MultipartPayload, error) {
	payload := &MultipartPayload{}
	writer := multipart.NewWriter(&payload.buf)

	// Stable field order keeps assembled bodies reproducible.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := fields[name]
		if value == nil {
			continue
		}
		if err := writer.WriteField(name, fmt.Sprint(value)); err != nil {
			return nil, fmt.Errorf("failed to write field %q: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(attachmentField, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, fmt.Errorf("failed to copy file contents: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	payload.contentType = writer.FormDataContentType()
	return payload, nil
}

// Reader returns a reader over the assembled body.
func (p *MultipartPayload) Reader() io.Reader {
	return bytes.NewReader(p.buf.Bytes())
}

// ContentType returns the multipart/form-data content type including the
// boundary.
func (p *MultipartPayload) ContentType() string {
	return p.contentType
}
