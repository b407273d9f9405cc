package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"herdbook/internal/platform/httpclient"
	"herdbook/internal/ports/archive"
)

const (
	metaFileName  = "file-name"
	metaFormat    = "format"
	metaCreatedAt = "created-at"
)

// API es el subconjunto del cliente S3 que usa el Store (permite fakes en tests).
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store implementa archive.Store sobre un bucket S3 (AWS o MinIO).
// Los metadatos del artefacto viajan como user metadata del objeto.
type Store struct {
	client API
	bucket string
}

// Config de construcción. Sin credenciales explícitas se usa la cadena por defecto.
type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // opcional (MinIO)
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	PathStyle       bool
	Timeout         time.Duration // default httpclient.DefaultTimeout
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.HTTPClient = httpclient.New(httpclient.Options{Timeout: cfg.Timeout})
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket), nil
}

func NewWithClient(client API, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

func (s *Store) Put(ctx context.Context, a archive.Artifact, payload []byte) (archive.Artifact, error) {
	key := archive.KeyFor(a.ID)

	// create-only: Head primero
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &key}); err == nil {
		return archive.Artifact{}, archive.ErrExists
	} else if !isNotFound(err) {
		return archive.Artifact{}, fmt.Errorf("s3: head %s: %w", key, err)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &key,
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String(a.ContentType),
		Metadata: map[string]string{
			metaFileName:  a.FileName,
			metaFormat:    a.Format,
			metaCreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return archive.Artifact{}, fmt.Errorf("s3: put %s: %w", key, err)
	}

	a.Key = key
	a.SizeBytes = int64(len(payload))
	return a, nil
}

func (s *Store) Get(ctx context.Context, id string) (archive.Artifact, []byte, error) {
	key := archive.KeyFor(id)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		if isNotFound(err) {
			return archive.Artifact{}, nil, archive.ErrNotFound
		}
		return archive.Artifact{}, nil, fmt.Errorf("s3: get %s: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return archive.Artifact{}, nil, fmt.Errorf("s3: read %s: %w", key, err)
	}

	a := fromMetadata(id, key, aws.ToString(out.ContentType), out.Metadata)
	a.SizeBytes = int64(len(payload))
	return a, payload, nil
}

// List recorre el prefijo exports/ y lee los metadatos con HeadObject.
func (s *Store) List(ctx context.Context) ([]archive.Artifact, error) {
	prefix := archive.KeyFor("")
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: &s.bucket,
		Prefix: &prefix,
	})

	out := make([]archive.Artifact, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3: list: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &key})
			if err != nil {
				return nil, fmt.Errorf("s3: head %s: %w", key, err)
			}
			a := fromMetadata(strings.TrimPrefix(key, prefix), key, aws.ToString(head.ContentType), head.Metadata)
			a.SizeBytes = aws.ToInt64(head.ContentLength)
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func fromMetadata(id, key, contentType string, meta map[string]string) archive.Artifact {
	a := archive.Artifact{
		ID:          id,
		Key:         key,
		ContentType: contentType,
		FileName:    lookup(meta, metaFileName),
		Format:      lookup(meta, metaFormat),
	}
	if ts, err := time.Parse(time.RFC3339Nano, lookup(meta, metaCreatedAt)); err == nil {
		a.CreatedAt = ts
	}
	return a
}

// S3 puede devolver las claves de metadata con otra capitalización.
func lookup(meta map[string]string, k string) string {
	if v, ok := meta[k]; ok {
		return v
	}
	for mk, v := range meta {
		if strings.EqualFold(mk, k) {
			return v
		}
	}
	return ""
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	return errors.As(err, &nf)
}
