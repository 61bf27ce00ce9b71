// Package minio stores profile photos in an S3-compatible bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

const bucketCheckTimeout = 5 * time.Second

// minioAPI is the subset of *minio.Client the store needs.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type Client struct {
	api       minioAPI
	bucket    string
	publicURL string

	// initErr is set when the endpoint settings are unusable.
	initErr error

	mu          sync.Mutex
	bucketReady bool
}

type Params struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

// NewClient builds the minio client from params. Bad settings are logged and
// reported by every upload instead of stopping the service.
func NewClient(ctx context.Context, params Params) *Client {
	client, err := minio.New(params.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(params.AccessKey, params.SecretKey, ""),
		Secure: params.UseSSL,
	})
	if err != nil {
		log.Errorf("blob store: invalid endpoint %q: %s", params.Endpoint, err)
		return &Client{
			bucket:    params.Bucket,
			publicURL: strings.TrimRight(params.PublicURL, "/"),
			initErr:   fmt.Errorf("failed to create minio client: %w", err),
		}
	}
	return NewClientWithAPI(ctx, client, params.Bucket, params.PublicURL)
}

// NewClientWithAPI tries to prepare the bucket right away. An unreachable
// store is only logged; the bucket is checked again on the next upload.
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket, publicURL string) *Client {
	c := &Client{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}

	checkCtx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()
	if err := c.ensureBucketExists(checkCtx); err != nil {
		log.Warnf("blob store: bucket %s not ready, retrying on upload: %s", bucket, err)
	}
	return c
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	if c.initErr != nil {
		return c.initErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bucketReady {
		return nil
	}

	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	c.bucketReady = true
	return nil
}

// Put uploads the object and returns the public URL clients use to fetch it.
func (c *Client) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := c.ensureBucketExists(ctx); err != nil {
		return "", err
	}

	_, err := c.api.PutObject(ctx, c.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return c.URL(objectName), nil
}

func (c *Client) Delete(ctx context.Context, objectName string) error {
	if c.initErr != nil {
		return c.initErr
	}
	if err := c.api.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (c *Client) URL(objectName string) string {
	return c.publicURL + "/" + url.PathEscape(c.bucket) + "/" + escapePath(objectName)
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
