package bucket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

const publicURLTemplate = "https://%s.s3.amazonaws.com/%s"

type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Client struct {
	api     objectAPI
	presign presignAPI
	bucket  string
}

// New builds an S3 client bound to one bucket. Path-style addressing is
// needed for custom endpoints such as localstack.
func New(cfg aws.Config, bucketName string, pathStyle bool) *Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = pathStyle
	})
	return newClient(client, s3.NewPresignClient(client), bucketName)
}

func newClient(api objectAPI, presign presignAPI, bucketName string) *Client {
	return &Client{
		api:     api,
		presign: presign,
		bucket:  bucketName,
	}
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	logger.Info("get object", zap.String("bucket", c.bucket), zap.String("key", key))

	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrap(err, "get object")
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			logger.Error("error closing object body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read object")
	}
	return body, nil
}

func (c *Client) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	logger.Info("put object",
		zap.String("bucket", c.bucket),
		zap.String("key", key),
		zap.Int("size", len(body)),
	)

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return errors.Wrap(err, "put object")
}

// PresignGetObject returns a credential-free GET URL for key valid for ttl.
func (c *Client) PresignGetObject(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", errors.Wrap(err, "presign get object")
	}
	return req.URL, nil
}

func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf(publicURLTemplate, c.bucket, key)
}
