package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/pkg/uploads"
	"github.com/gin-gonic/gin"
)

// FileStore persists uploaded files and returns the URL they are served under
type FileStore interface {
	Save(fh *multipart.FileHeader, field string) (string, error)
	Remove(url string) error
}

// checkForm rejects value or file parts the entity does not define
func checkForm(c *gin.Context, valueFields, fileFields []string) error {
	if err := models.CheckFields(c.Request.PostForm, valueFields); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidData, err)
	}
	form := c.Request.MultipartForm
	if form == nil {
		return nil
	}
	for name := range form.File {
		if !contains(fileFields, name) {
			return fmt.Errorf("%w: unknown file field %q", services.ErrInvalidData, name)
		}
	}
	return nil
}

// formFiles returns the files sent under field, or nil for non-multipart requests
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	if c.Request.MultipartForm == nil {
		return nil
	}
	return c.Request.MultipartForm.File[field]
}

// saveFiles stores every file of field. On failure the files saved so far are removed.
func saveFiles(store FileStore, files []*multipart.FileHeader, field string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := store.Save(fh, field)
		if err != nil {
			removeFiles(store, urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// uploadError classes a rejected file type as invalid input; anything else stays a server error
func uploadError(err error) error {
	if errors.Is(err, uploads.ErrUnsupportedType) {
		return fmt.Errorf("%w: %v", services.ErrInvalidData, err)
	}
	return err
}

// removeFiles deletes stored files, logging failures
func removeFiles(store FileStore, urls []string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := store.Remove(url); err != nil {
			logger.GetLogger("app").WithError(err).WithField("file", url).Warn("failed to remove uploaded file")
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
