package service

import (
	"bytes"
	"context"
	"time"

	"planner-api/core/config"
	"planner-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SnapshotInfo describes one stored backup object.
type SnapshotInfo struct {
	Key          string    `json:"key"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
}

// Uploader is the object-storage contract for backup snapshots.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
	List(ctx context.Context, prefix string) ([]SnapshotInfo, error)
}

// S3Uploader stores snapshots in an S3 bucket using static credentials from
// config.
type S3Uploader struct {
	client *s3.Client
	bucket string
}

func NewS3Uploader(cfg config.BackupConfig) *S3Uploader {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		logger.Error("S3Uploader:Upload", "error", err, "key", key)
		return err
	}
	logger.Info("S3Uploader:Upload:Done", "key", key, "bytes", len(body))
	return nil
}

func (u *S3Uploader) List(ctx context.Context, prefix string) ([]SnapshotInfo, error) {
	out, err := u.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(u.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		logger.Error("S3Uploader:List", "error", err, "prefix", prefix)
		return nil, err
	}

	snapshots := make([]SnapshotInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		info := SnapshotInfo{}
		if obj.Key != nil {
			info.Key = *obj.Key
		}
		if obj.Size != nil {
			info.SizeBytes = *obj.Size
		}
		if obj.LastModified != nil {
			info.LastModified = *obj.LastModified
		}
		snapshots = append(snapshots, info)
	}
	return snapshots, nil
}
