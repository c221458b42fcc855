// Package netx contains HTTP payload helpers shared by the remote gateway.
package netx

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// NamedFile is a file to be sent as one part of a multipart form.
type NamedFile struct {
	Name string
	Data []byte
}

// MultipartPayload is a fully assembled multipart/form-data body. The content
// type includes the generated boundary and must be sent verbatim; overriding
// it would break the transport framing.
type MultipartPayload struct {
	Body        *bytes.Buffer
	ContentType string
}

// BuildFilesForm writes the given files into a multipart form under the same
// field name (the backend expects a repeated "files" field).
func BuildFilesForm(field string, files []NamedFile) (*MultipartPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write form file %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return &MultipartPayload{Body: &buf, ContentType: w.FormDataContentType()}, nil
}
