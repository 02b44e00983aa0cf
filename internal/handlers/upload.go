package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

// evidenceFields are the multipart field names accepted for evidence files.
// Clients differ in how they name repeated file fields; files under every
// name are read, in this order.
var evidenceFields = []string{"files", "files[]", "file", "media", "evidence"}

const multipartMemory = 32 << 20

// readEvidence parses the multipart form and loads every evidence file into
// memory. It writes a 400 response and returns false on failure.
func readEvidence(c *gin.Context, maxFileBytes int64) ([]services.EvidenceFile, bool) {
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && err != http.ErrNotMultipart {
		badRequest(c, "failed to parse multipart form", err.Error())
		return nil, false
	}

	form := c.Request.MultipartForm
	if form == nil || form.File == nil {
		return nil, true
	}

	var headers []*multipart.FileHeader
	for _, field := range evidenceFields {
		headers = append(headers, form.File[field]...)
	}

	files := make([]services.EvidenceFile, 0, len(headers))
	for _, fh := range headers {
		if maxFileBytes > 0 && fh.Size > maxFileBytes {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "file too large",
				Message: fmt.Sprintf("%s is %d bytes, the limit is %d", fh.Filename, fh.Size, maxFileBytes),
			})
			return nil, false
		}

		data, err := readFileHeader(fh)
		if err != nil {
			badRequest(c, "failed to read file", fmt.Sprintf("%s: %v", fh.Filename, err))
			return nil, false
		}

		files = append(files, services.EvidenceFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, true
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}
	return data, nil
}

// formValue reads a text field from either a multipart or urlencoded body.
func formValue(c *gin.Context, key string) string {
	if c.Request.MultipartForm != nil {
		if values := c.Request.MultipartForm.Value[key]; len(values) > 0 {
			return values[0]
		}
	}
	return c.PostForm(key)
}
