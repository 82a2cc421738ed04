package config

import (
	"context"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Object storage client and bucket, shared like DB.
var (
	Storage       *minio.Client
	StorageBucket string

	// StoragePublicURL is the externally reachable base URL objects are served
	// from, e.g. "https://files.example.edu". Defaults to the endpoint.
	StoragePublicURL string
)

// InitStorage connects to the MinIO-compatible object store and ensures the
// bucket exists.
func InitStorage() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	StorageBucket = os.Getenv("MINIO_BUCKET")
	if StorageBucket == "" {
		StorageBucket = "org-portal-files"
	}

	StoragePublicURL = os.Getenv("MINIO_PUBLIC_URL")
	if StoragePublicURL == "" {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		StoragePublicURL = scheme + endpoint
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("Failed to connect to object storage:", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, StorageBucket)
	if err != nil {
		log.Fatal("Failed to check storage bucket:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, StorageBucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("Failed to create storage bucket:", err)
		}
	}

	Storage = client
	log.Println("Object storage connected successfully")
}
