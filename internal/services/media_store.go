package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BlobStore is the object storage behind MediaStore.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
	Delete(ctx context.Context, paths ...string) error
}

type MediaStoreOptions struct {
	// Timeout bounds each upload attempt.
	Timeout     time.Duration
	MaxAttempts int
	Concurrency int
	// Backoff is the wait before each retry; the last value repeats.
	Backoff []time.Duration
}

var defaultBackoff = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// MediaStore maps evidence files to storage paths and uploads them with a
// per-file timeout and retry.
type MediaStore struct {
	blobs  BlobStore
	opts   MediaStoreOptions
	logger *zap.Logger
}

func NewMediaStore(blobs BlobStore, opts MediaStoreOptions, logger *zap.Logger) *MediaStore {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 3
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 4
	}
	if opts.Backoff == nil {
		opts.Backoff = defaultBackoff
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaStore{blobs: blobs, opts: opts, logger: logger}
}

// BuildStoragePath returns projects/{project}/{owner}/{nanos}_{nonce}_{name}.
// The nonce keeps identically named uploads in the same nanosecond apart.
func (m *MediaStore) BuildStoragePath(projectID, ownerID uuid.UUID, fileName string) string {
	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("projects/%s/%s/%d_%s_%s",
		projectID, ownerID, time.Now().UnixNano(), nonce, sanitizeFileName(fileName))
}

func (m *MediaStore) PublicURL(path string) string {
	return m.blobs.PublicURL(path)
}

// Remove deletes stored objects. It is not retried.
func (m *MediaStore) Remove(ctx context.Context, paths ...string) error {
	return m.blobs.Delete(ctx, paths...)
}

// Upload stores data at path, retrying transient failures. Quota errors are
// not retried. The returned error is always an *UploadError.
//
// A timed-out attempt may still complete in the background. If it does so
// before the upload gives up, the upload succeeds; if it does so after, the
// object is deleted again.
func (m *MediaStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	var (
		lastErr error
		late    []<-chan error
	)
	for attempt := 1; attempt <= m.opts.MaxAttempts; attempt++ {
		pending, err := m.attempt(ctx, path, data, contentType)
		if pending != nil {
			late = append(late, pending)
		}
		if err == nil {
			return nil
		}

		var stored bool
		if stored, late = settled(late); stored {
			m.logger.Info("timed out upload attempt completed", zap.String("path", path), zap.Int("attempt", attempt))
			return nil
		}
		lastErr = err

		kind := classifyUploadError(err)
		m.logger.Warn("evidence upload attempt failed",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.String("kind", kind),
			zap.Error(err),
		)

		if kind == UploadKindQuotaExceeded {
			m.discardLate(ctx, path, late)
			return &UploadError{Kind: kind, Attempts: attempt, Err: err}
		}
		if attempt == m.opts.MaxAttempts {
			break
		}
		if err := sleepContext(ctx, m.backoff(attempt)); err != nil {
			m.discardLate(ctx, path, late)
			return &UploadError{Kind: UploadKindStorageUnavailable, Attempts: attempt, Err: err}
		}
	}

	m.discardLate(ctx, path, late)
	return &UploadError{
		Kind:     UploadKindStorageUnavailable,
		Attempts: m.opts.MaxAttempts,
		Err:      fmt.Errorf("failed after %d retries: %w", m.opts.MaxAttempts, lastErr),
	}
}

// attempt runs one upload under its own timeout. When the timeout fires
// first, the still running upload's outcome is returned as pending.
func (m *MediaStore) attempt(ctx context.Context, path string, data []byte, contentType string) (<-chan error, error) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.blobs.Upload(ctx, path, data, contentType)
	}()

	select {
	case err := <-done:
		return nil, err
	case <-ctx.Done():
		return done, fmt.Errorf("upload timed out: %w", ctx.Err())
	}
}

// settled reports whether a timed-out attempt has since stored the object.
// Attempts that finished with an error are dropped from pending.
func settled(pending []<-chan error) (bool, []<-chan error) {
	var running []<-chan error
	for _, ch := range pending {
		select {
		case err := <-ch:
			if err == nil {
				return true, nil
			}
		default:
			running = append(running, ch)
		}
	}
	return false, running
}

// discardLate deletes the object at path if a timed-out attempt stores it
// after the upload was reported as failed.
func (m *MediaStore) discardLate(ctx context.Context, path string, pending []<-chan error) {
	if len(pending) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	go func() {
		for _, ch := range pending {
			if err := <-ch; err != nil {
				continue
			}

			rmCtx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
			defer cancel()
			if err := m.blobs.Delete(rmCtx, path); err != nil {
				m.logger.Warn("failed to remove late upload", zap.String("path", path), zap.Error(err))
				return
			}
			m.logger.Info("removed late upload", zap.String("path", path))
			return
		}
	}()
}

func (m *MediaStore) backoff(attempt int) time.Duration {
	if len(m.opts.Backoff) == 0 {
		return 0
	}
	if attempt-1 < len(m.opts.Backoff) {
		return m.opts.Backoff[attempt-1]
	}
	return m.opts.Backoff[len(m.opts.Backoff)-1]
}

// UploadItem is one file for UploadMany.
type UploadItem struct {
	Path        string
	Data        []byte
	ContentType string
}

// UploadResult is the outcome for the item at Index. Err is nil on success.
type UploadResult struct {
	Index int
	Path  string
	URL   string
	Err   error
}

func (r UploadResult) Succeeded() bool {
	return r.Err == nil
}

// UploadMany uploads all items concurrently. Results are index-aligned with
// items and every item is attempted regardless of the others.
func (m *MediaStore) UploadMany(ctx context.Context, items []UploadItem) []UploadResult {
	results := make([]UploadResult, len(items))

	var g errgroup.Group
	g.SetLimit(m.opts.Concurrency)
	for i, item := range items {
		g.Go(func() error {
			result := UploadResult{Index: i, Path: item.Path}
			if err := m.Upload(ctx, item.Path, item.Data, item.ContentType); err != nil {
				result.Err = err
			} else {
				result.URL = m.PublicURL(item.Path)
			}
			results[i] = result
			return nil
		})
	}
	g.Wait()

	return results
}

func classifyUploadError(err error) string {
	if errors.Is(err, ErrQuotaExceeded) {
		return UploadKindQuotaExceeded
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"payload too large", "quota", "exceeded the maximum", "entitytoolarge"} {
		if strings.Contains(msg, marker) {
			return UploadKindQuotaExceeded
		}
	}
	return UploadKindStorageUnavailable
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "file"
	}
	if len(sanitized) > 100 {
		sanitized = sanitized[len(sanitized)-100:]
	}
	return sanitized
}
