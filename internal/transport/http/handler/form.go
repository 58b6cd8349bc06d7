package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
)

// uploadField is the multipart field carrying the file for every content type.
const uploadField = "image"

const multipartMemory = 8 << 20

// parseForm reads a multipart or urlencoded body capped at maxBytes.
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return fmt.Errorf("upload exceeds %d bytes: %w", maxBytes, domain.ErrBadRequest)
		}
		return fmt.Errorf("invalid form body: %w", domain.ErrBadRequest)
	}
	return nil
}

// formUpload returns the uploaded file, or nil when the field is absent.
// The returned close func is always safe to call.
func formUpload(r *http.Request) (*asset.Upload, func(), error) {
	f, hdr, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid %s field: %w", uploadField, domain.ErrBadRequest)
	}
	return &asset.Upload{Reader: f, Filename: hdr.Filename}, func() { _ = f.Close() }, nil
}

// formValue returns the trimmed value of key.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// formPtr returns a pointer to the value of key, or nil if the client did not
// send it.
func formPtr(r *http.Request, key string) *string {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := strings.TrimSpace(vs[0])
	return &v
}
