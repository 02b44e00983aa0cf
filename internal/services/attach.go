package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
)

// EvidenceUploader is the part of MediaStore the workflows need.
type EvidenceUploader interface {
	BuildStoragePath(projectID, ownerID uuid.UUID, fileName string) string
	UploadMany(ctx context.Context, items []UploadItem) []UploadResult
	Remove(ctx context.Context, paths ...string) error
}

type MediaRecorder interface {
	CreateMediaItem(ctx context.Context, item *models.MediaItem) error
}

// EvidenceResult is the outcome of one submitted file, at the same index as
// the file in the submission.
type EvidenceResult struct {
	Index    int
	Filename string
	Media    *models.MediaItem
	URL      string
	Err      error
}

func (r EvidenceResult) Succeeded() bool {
	return r.Err == nil
}

// CountUploads tallies successful and failed files.
func CountUploads(results []EvidenceResult) (uploaded, failed int) {
	for _, r := range results {
		if r.Succeeded() {
			uploaded++
		} else {
			failed++
		}
	}
	return uploaded, failed
}

// mediaOwner identifies the note or to-do that uploaded media belongs to.
type mediaOwner struct {
	projectID uuid.UUID
	logID     uuid.NullUUID
	todoID    uuid.NullUUID
}

func (o mediaOwner) id() uuid.UUID {
	if o.logID.Valid {
		return o.logID.UUID
	}
	return o.todoID.UUID
}

// attachEvidence uploads files for owner and records a media row for each
// stored file. It runs detached from ctx's cancellation: once the owning row
// exists, uploads are seen through.
func attachEvidence(ctx context.Context, uploader EvidenceUploader, recorder MediaRecorder, logger *zap.Logger, owner mediaOwner, files []EvidenceFile, now time.Time) []EvidenceResult {
	results := make([]EvidenceResult, len(files))
	if len(files) == 0 {
		return results
	}
	ctx = context.WithoutCancel(ctx)

	items := make([]UploadItem, len(files))
	for i, f := range files {
		items[i] = UploadItem{
			Path:        uploader.BuildStoragePath(owner.projectID, owner.id(), f.Filename),
			Data:        f.Data,
			ContentType: f.DetectedContentType(),
		}
	}

	for _, up := range uploader.UploadMany(ctx, items) {
		f := files[up.Index]
		result := EvidenceResult{Index: up.Index, Filename: f.Filename}

		if !up.Succeeded() {
			result.Err = up.Err
			results[up.Index] = result
			continue
		}

		item := &models.MediaItem{
			ProjectID: owner.projectID,
			LogID:     owner.logID,
			TodoID:    owner.todoID,
			URL:       up.Path,
			Type:      f.MediaType(),
			CreatedAt: now,
		}
		if err := recorder.CreateMediaItem(ctx, item); err != nil {
			logger.Error("failed to record uploaded evidence",
				zap.String("path", up.Path),
				zap.String("project_id", owner.projectID.String()),
				zap.Error(err),
			)
			// An unrecorded object would never be listed; drop it.
			if rmErr := uploader.Remove(ctx, up.Path); rmErr != nil {
				logger.Warn("failed to remove unrecorded evidence", zap.String("path", up.Path), zap.Error(rmErr))
			}
			result.Err = fmt.Errorf("failed to record uploaded file: %w", err)
			results[up.Index] = result
			continue
		}

		result.Media = item
		result.URL = up.URL
		results[up.Index] = result
	}

	uploaded, failed := CountUploads(results)
	logger.Info("evidence upload finished",
		zap.String("project_id", owner.projectID.String()),
		zap.String("owner_id", owner.id().String()),
		zap.Int("uploaded", uploaded),
		zap.Int("failed", failed),
	)
	return results
}
