// Package storage is the upload gateway: it validates and normalizes an
// image and persists it to one of two backends, selected by configuration.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"cooking-half/domain"

	"github.com/google/uuid"
)

type (
	// Backend persists an optimized image under key and returns its
	// public URL.
	Backend interface {
		Put(ctx context.Context, key string, body io.Reader, size int64) (string, error)
		Delete(ctx context.Context, url string) error
	}

	Gateway interface {
		UploadProfileImage(ctx context.Context, file *multipart.FileHeader) (string, error)
		DeleteByURL(ctx context.Context, url string) error
	}

	gateway struct {
		backend Backend
	}
)

type Config struct {
	UseS3     bool
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	LocalDir  string
}

func NewGateway(cfg Config) (Gateway, error) {
	if cfg.UseS3 {
		backend, err := NewAwsS3(cfg)
		if err != nil {
			return nil, err
		}
		return &gateway{backend: backend}, nil
	}

	backend, err := NewLocalDisk(cfg.LocalDir)
	if err != nil {
		return nil, err
	}
	return &gateway{backend: backend}, nil
}

func (g *gateway) UploadProfileImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", domain.NewUploadError("no file provided")
	}

	src, err := file.Open()
	if err != nil {
		return "", domain.NewUploadError("error reading file: %v", err)
	}
	defer src.Close()

	if err := checkImage(file.Filename, file.Size, src); err != nil {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", domain.NewUploadError("error reading file: %v", err)
	}

	optimized, err := optimizeImage(src)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profile-images/%s.jpg", uuid.New().String())
	return g.backend.Put(ctx, key, optimized, int64(optimized.Len()))
}

func (g *gateway) DeleteByURL(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	return g.backend.Delete(ctx, url)
}
