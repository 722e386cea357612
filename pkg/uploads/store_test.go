package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a FileHeader the way net/http does when parsing a request
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "uploads/", []string{"pdf", ".PNG"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads", store.URLPrefix())

	url, err := store.Save(fileHeader(t, "file", "result.PDF", []byte("%PDF-1.4")), "file")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/file-"), url)
	assert.True(t, strings.HasSuffix(url, ".pdf"), url)

	stored := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	t.Run("removing twice is fine", func(t *testing.T) {
		assert.NoError(t, store.Remove(url))
	})

	t.Run("foreign URLs are ignored", func(t *testing.T) {
		assert.NoError(t, store.Remove("https://example.com/uploads/x.pdf"))
		assert.NoError(t, store.Remove(""))
	})
}

func TestSaveRejectsExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/uploads", []string{".jpg"})
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "images", "run.sh", []byte("#!/bin/sh")), "images")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
