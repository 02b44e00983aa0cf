package supabase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewStorageClient uses the storage API of an existing Supabase client.
func NewStorageClient(client *Client, bucket string) (*StorageClient, error) {
	if client == nil || client.Supabase == nil || client.Supabase.Storage == nil {
		return nil, fmt.Errorf("supabase storage client is not configured")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	return &StorageClient{
		client:  client.Supabase.Storage,
		bucket:  bucket,
		baseURL: strings.TrimRight(client.Config.SupabaseURL, "/"),
	}, nil
}

// Upload stores data at path. Existing objects at the same path are not
// overwritten; paths carry a nonce so collisions mean a bug.
func (s *StorageClient) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// PublicURL builds the public object URL without a network call.
func (s *StorageClient) PublicURL(path string) string {
	return PublicObjectURL(s.baseURL, s.bucket, path)
}

func (s *StorageClient) Delete(ctx context.Context, paths ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}

func PublicObjectURL(baseURL, bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		strings.TrimRight(baseURL, "/"), bucket, strings.TrimLeft(path, "/"))
}
