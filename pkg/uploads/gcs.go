package uploads

import (
	"context"
	"mime/multipart"

	"cloud.google.com/go/storage"

	"wardrobe-api/pkg/helpers"
)

// GCSStore uploads images into a Google Cloud Storage bucket and returns the
// public object URL. Selected when a bucket is configured.
type GCSStore struct {
	Client *storage.Client
	Bucket string
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket}
}

func (s *GCSStore) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	ext, err := ValidateImage(fh)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	objectPath := "uploads/" + objectName(ext)
	return helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, fh.Header.Get("Content-Type"), src)
}
