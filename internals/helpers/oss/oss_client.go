package oss

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"context"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/Candratama/four-best-website-sub000/internals/configs"
)

// Service membungkus bucket Aliyun OSS sebagai blob store sederhana
// (put/get/delete by key + public URL).
type Service struct {
	Client     *aliyun.Client
	Bucket     *aliyun.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
}

func NewServiceFromEnv() (*Service, error) {
	endpoint := configs.OSSEndpoint
	ak := configs.OSSAccessKey
	sk := configs.OSSSecretKey
	bucketName := configs.OSSBucket
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := aliyun.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(aliyun.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &Service{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimRight(configs.OSSPublicBase, "/"),
	}, nil
}

func (s *Service) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []aliyun.Option{
		aliyun.WithContext(ctx),
		aliyun.ContentType(contentType),
		aliyun.ContentDisposition("inline"),
		aliyun.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, bytes.NewReader(data), opts...)
}

func (s *Service) GetObject(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.Bucket.GetObject(key, aliyun.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *Service) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, aliyun.WithContext(ctx))
}

func (s *Service) DeleteObjects(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.Bucket.DeleteObjects(keys, aliyun.WithContext(ctx))
	return err
}

// PublicURL = {publicBase}/{key}; fallback ke endpoint bucket-style.
func (s *Service) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base := strings.TrimSpace(configs.OSSPublicBase); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

func isNotFound(err error) bool {
	if e, ok := err.(aliyun.ServiceError); ok {
		return e.StatusCode == 404
	}
	return false
}
