package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

func newNoteWorkflow(store *memStore, blobs *fakeBlobs) *services.NoteSubmissionWorkflow {
	w := services.NewNoteSubmissionWorkflow(store, newTestMediaStore(blobs), zap.NewNop())
	w.Now = func() time.Time { return at("2024-07-01", 10) }
	return w
}

func TestNoteSubmissionWorkflow_Submit(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	author := uuid.NullUUID{UUID: uuid.New(), Valid: true}
	workflow := newNoteWorkflow(store, newFakeBlobs())

	result, err := workflow.Submit(context.Background(), services.NoteSubmission{
		ProjectID:   project.ID,
		Comment:     "Poured foundation today",
		SubmittedBy: author,
	})
	require.NoError(t, err)

	assert.Equal(t, "Poured foundation today", result.Entry.Body)
	assert.Equal(t, models.EntryTypeNote, result.Entry.EntryType)
	assert.Equal(t, author, result.Entry.CreatedBy)
	assert.False(t, result.Entry.Title.Valid)
	assert.Empty(t, result.Uploads)

	items, err := services.NewFeedRepository(store, newFakeBlobs(), time.UTC, zap.NewNop()).
		ListFeed(context.Background(), project.ID, services.SingleDay(date("2024-07-01")), services.FeedFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, result.Entry.ID, items[0].EntryID)
}

func TestNoteSubmissionWorkflow_CommentRequired(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	workflow := newNoteWorkflow(store, newFakeBlobs())

	_, err := workflow.Submit(context.Background(), services.NoteSubmission{ProjectID: project.ID, Comment: "  \n "})
	assert.ErrorIs(t, err, services.ErrCommentRequired)
	assert.Empty(t, store.logs)
}

func TestNoteSubmissionWorkflow_UnknownProjectOrTodo(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	other := store.addProject("Tower B")
	foreignTodo := store.addTodo(other.ID, "Elsewhere", nil)
	workflow := newNoteWorkflow(store, newFakeBlobs())
	ctx := context.Background()

	_, err := workflow.Submit(ctx, services.NoteSubmission{ProjectID: uuid.New(), Comment: "hello"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = workflow.Submit(ctx, services.NoteSubmission{
		ProjectID: project.ID,
		TodoID:    uuid.NullUUID{UUID: foreignTodo.ID, Valid: true},
		Comment:   "hello",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, store.logs)
}

func TestNoteSubmissionWorkflow_PartialUploadFailure(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	failing := &suffixFailBlobs{fakeBlobs: newFakeBlobs(), suffix: "_broken.jpg"}
	workflow := services.NewNoteSubmissionWorkflow(store, newTestMediaStore(failing), zap.NewNop())

	result, err := workflow.Submit(context.Background(), services.NoteSubmission{
		ProjectID: project.ID,
		Comment:   "Two photos",
		Files:     []services.EvidenceFile{photo("ok.jpg"), photo("broken.jpg")},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Entry)

	require.Len(t, result.Uploads, 2)
	assert.True(t, result.Uploads[0].Succeeded())
	assert.False(t, result.Uploads[1].Succeeded())
	assert.ErrorIs(t, result.Uploads[1].Err, services.ErrStorageUnavailable)

	media, err := store.ListMediaByLog(context.Background(), result.Entry.ID)
	require.NoError(t, err)
	assert.Len(t, media, 1)
}

func TestNoteSubmissionWorkflow_RetryCountsExistingMedia(t *testing.T) {
	store := newMemStore()
	project := store.addProject("Tower A")
	workflow := newNoteWorkflow(store, newFakeBlobs())
	ctx := context.Background()

	result, err := workflow.Submit(ctx, services.NoteSubmission{
		ProjectID: project.ID,
		Comment:   "One photo so far",
		Files:     []services.EvidenceFile{photo("first.jpg")},
	})
	require.NoError(t, err)

	_, err = workflow.RetryUploads(ctx, project.ID, result.Entry.ID, []services.EvidenceFile{video("clip.mp4")})
	assert.ErrorIs(t, err, services.ErrInvalidFileCombination)

	_, err = workflow.RetryUploads(ctx, project.ID, result.Entry.ID, []services.EvidenceFile{photo("b.jpg"), photo("c.jpg")})
	assert.ErrorIs(t, err, services.ErrTooManyFiles)

	retried, err := workflow.RetryUploads(ctx, project.ID, result.Entry.ID, []services.EvidenceFile{photo("second.jpg")})
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.True(t, retried[0].Succeeded())
	assert.Equal(t, result.Entry.ID, retried[0].Media.LogID.UUID)

	_, err = workflow.RetryUploads(ctx, uuid.New(), result.Entry.ID, []services.EvidenceFile{photo("x.jpg")})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// suffixFailBlobs fails uploads whose path ends with suffix.
type suffixFailBlobs struct {
	*fakeBlobs
	suffix string
}

func (s *suffixFailBlobs) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if strings.HasSuffix(path, s.suffix) {
		return assert.AnError
	}
	return s.fakeBlobs.Upload(ctx, path, data, contentType)
}
