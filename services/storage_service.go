package services

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"org-portal-api/config"
)

// StorageService is the MinIO-backed ObjectStorage implementation. Uploaded
// objects get a uuid prefix so repeated filenames never collide, and the
// returned URL is publicly dereferenceable.
type StorageService struct{}

func NewStorageService() *StorageService { return &StorageService{} }

// Upload writes the object and returns its public URL.
func (s *StorageService) Upload(objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	key := uuid.NewString() + "-" + path.Base(objectName)
	_, err := config.Storage.PutObject(context.Background(), config.StorageBucket, key, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return config.StoragePublicURL + "/" + config.StorageBucket + "/" + key, nil
}

// List returns the object keys under prefix.
func (s *StorageService) List(prefix string) ([]string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var keys []string
	for object := range config.Storage.ListObjects(ctx, config.StorageBucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

// Remove deletes one object by key.
func (s *StorageService) Remove(key string) error {
	return config.Storage.RemoveObject(context.Background(), config.StorageBucket, key,
		minio.RemoveObjectOptions{})
}
