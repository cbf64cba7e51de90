package storage

import (
	"encoding/json"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineClient(t *testing.T) *minio.Client {
	t.Helper()
	// minio.New does not dial; no request is made by these tests.
	c, err := minio.New("s3.amazonaws.com", &minio.Options{
		Creds:  credentials.NewStaticV4("id", "secret", ""),
		Secure: true,
		Region: "eu-west-1",
	})
	require.NoError(t, err)
	return c
}

func TestPublicURLVirtualHosted(t *testing.T) {
	s := newMinioStorage(offlineClient(t), Options{Bucket: "images", Region: "eu-west-1"})

	assert.Equal(t, "https://images.s3.eu-west-1.amazonaws.com/abc1234.png", s.PublicURL("abc1234.png"))
}

func TestPublicURLCustomBase(t *testing.T) {
	s := newMinioStorage(offlineClient(t), Options{
		Bucket:     "images",
		Region:     "us-east-1",
		PublicBase: "http://localhost:9000/images/",
	})

	assert.Equal(t, "http://localhost:9000/images/abc1234.png", s.PublicURL("abc1234.png"))
	assert.Equal(t, "http://localhost:9000/images/my%20cat.png", s.PublicURL("my cat.png"))
}

func TestPublicReadPolicy(t *testing.T) {
	var doc struct {
		Statement []struct {
			Effect   string
			Action   string
			Resource string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("images")), &doc))
	require.Len(t, doc.Statement, 1)
	assert.Equal(t, "Allow", doc.Statement[0].Effect)
	assert.Equal(t, "s3:GetObject", doc.Statement[0].Action)
	assert.Equal(t, "arn:aws:s3:::images/*", doc.Statement[0].Resource)
}

func TestMinioStorageSatisfiesStorage(t *testing.T) {
	var _ Storage = (*MinioStorage)(nil)
}
