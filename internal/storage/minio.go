package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Options configures a MinioStorage.
type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicBase replaces the virtual-hosted S3 URL, e.g. a CDN or a local MinIO.
	PublicBase string
	// PublicPolicy applies an anonymous-read bucket policy at startup.
	PublicPolicy bool
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists and returns a
// ready-to-use MinioStorage. Without static keys the client falls back to the AWS
// environment, the shared credentials file, then the instance role.
func NewMinioStorage(ctx context.Context, opts Options, log *zap.Logger) (*MinioStorage, error) {
	creds := credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	if opts.AccessKey == "" {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.FileAWSCredentials{},
			&credentials.IAM{Client: &http.Client{Transport: http.DefaultTransport}},
		})
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
		log.Info("storage: created bucket", zap.String("bucket", opts.Bucket), zap.String("region", opts.Region))
	}

	if opts.PublicPolicy {
		if err := client.SetBucketPolicy(ctx, opts.Bucket, publicReadPolicy(opts.Bucket)); err != nil {
			return nil, fmt.Errorf("set bucket policy: %w", err)
		}
	}

	return newMinioStorage(client, opts), nil
}

func newMinioStorage(client *minio.Client, opts Options) *MinioStorage {
	base := strings.TrimRight(opts.PublicBase, "/")
	if base == "" {
		base = VirtualHostedBase(opts.Bucket, opts.Region)
	}
	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: base,
	}
}

// VirtualHostedBase returns the virtual-hosted-style S3 origin for bucket in region.
func VirtualHostedBase(bucket, region string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// Upload streams reader to the bucket under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown, MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given key.
// For AWS: "https://images.s3.eu-west-1.amazonaws.com/abc1234.png"
// For local MinIO: "http://localhost:9000/images/abc1234.png"
func (s *MinioStorage) PublicURL(key string) string {
	return s.publicBase + "/" + url.PathEscape(key)
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
