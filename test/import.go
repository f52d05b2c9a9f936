package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// UploadFile returns a multipart body with the content as the form file
// "file" and the headers to send it with.
func UploadFile(t *testing.T, filename, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := w.Write([]byte(content)); err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
