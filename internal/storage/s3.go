package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/microcosm-cc/bluemonday"
)

// S3Config holds the settings for the S3 report store
type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// S3ReportStore mirrors session reports to an S3 bucket as .html files.
// Public read access is expected to be configured via bucket policy, not ACLs.
type S3ReportStore struct {
	client *s3.Client
	bucket string
	policy *bluemonday.Policy
}

// NewS3ReportStore creates an S3-backed report store
func NewS3ReportStore(ctx context.Context, cfg S3Config) (*S3ReportStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket name is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3ReportStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		policy: reportPolicy(),
	}, nil
}

// reportPolicy builds the sanitization policy for session report HTML.
// Reports are full HTML documents, so the document skeleton and inline
// styling survive on top of the usual user-generated-content rules.
func reportPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("html", "head", "title", "meta", "body", "style",
		"header", "main", "section", "article", "footer")
	p.AllowAttrs("class", "id").Globally()
	p.AllowStyling()
	return p
}

// Upload sanitizes the report body and writes it to
// reports/{handle}/{sessionID}_{timestamp}.html, returning the permanent
// public URL of the object.
func (s *S3ReportStore) Upload(ctx context.Context, sessionID, content, ownerHandle string) (string, error) {
	timestamp := time.Now().UTC().Format("20060102_150405")
	key := fmt.Sprintf("reports/%s/%s_%s.html", ownerHandle, sessionID, timestamp)

	sanitized := s.policy.Sanitize(content)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               strings.NewReader(sanitized),
		ContentType:        aws.String("text/html; charset=utf-8"),
		ContentDisposition: aws.String("inline"),
		Metadata: map[string]string{
			"session_id":  sessionID,
			"owner":       ownerHandle,
			"uploaded_at": timestamp,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload report to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// Delete removes a mirrored report given its public URL
func (s *S3ReportStore) Delete(ctx context.Context, reportURL string) error {
	idx := strings.Index(reportURL, ".com/")
	if idx < 0 {
		return fmt.Errorf("unrecognized report URL: %s", reportURL)
	}
	key := reportURL[idx+len(".com/"):]

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete report from s3: %w", err)
	}
	return nil
}
