package services

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"sitelog-backend/internal/models"
)

const MaxEvidenceFiles = 2

// EvidenceFile is one photo or video attached to a note or execution report.
type EvidenceFile struct {
	Filename    string
	ContentType string // as declared by the client
	Data        []byte
}

// MediaType classifies the file as models.MediaPhoto, models.MediaVideo or
// "" for anything else. The content is sniffed first; the declared type and
// the extension are consulted only when sniffing is inconclusive, that is
// when it finds nothing more specific than plain text or raw bytes.
func (f EvidenceFile) MediaType() string {
	if len(f.Data) > 0 {
		detected := mimetype.Detect(f.Data)
		for m := detected; m != nil; m = m.Parent() {
			if kind := mediaTypeOf(m.String()); kind != "" {
				return kind
			}
		}
		if !inconclusive(detected) {
			return ""
		}
	}
	if kind := mediaTypeOf(f.ContentType); kind != "" {
		return kind
	}
	return mediaTypeOf(mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Filename))))
}

// DetectedContentType is the content type sent to storage.
func (f EvidenceFile) DetectedContentType() string {
	if len(f.Data) > 0 {
		if m := mimetype.Detect(f.Data); mediaTypeOf(m.String()) != "" {
			return m.String()
		}
	}
	if f.ContentType != "" {
		return f.ContentType
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Filename))); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

func inconclusive(m *mimetype.MIME) bool {
	return m.Is("application/octet-stream") || m.Is("text/plain")
}

func mediaTypeOf(contentType string) string {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaPhoto
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo
	}
	return ""
}

// ValidateEvidence checks a set of files: at most two, and either up to two
// photos or exactly one video.
func ValidateEvidence(files []EvidenceFile) error {
	return validateEvidence(nil, files)
}

// validateEvidence applies the evidence rules to media already attached plus
// the files about to be uploaded.
func validateEvidence(existing []models.MediaItem, files []EvidenceFile) error {
	if len(existing)+len(files) > MaxEvidenceFiles {
		return ErrTooManyFiles
	}

	var photos, videos int
	for _, item := range existing {
		switch item.Type {
		case models.MediaPhoto:
			photos++
		case models.MediaVideo:
			videos++
		}
	}
	for _, f := range files {
		switch f.MediaType() {
		case models.MediaPhoto:
			photos++
		case models.MediaVideo:
			videos++
		default:
			return ErrInvalidFileCombination
		}
	}

	if videos > 1 || (videos == 1 && photos > 0) {
		return ErrInvalidFileCombination
	}
	return nil
}
