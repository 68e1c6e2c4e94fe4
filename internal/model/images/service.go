package images

import (
	"context"
	"encoding/base64"
	"path"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

// PresignTTL is how long a presigned read URL stays valid.
const PresignTTL = 5 * time.Minute

const (
	keyPrefix          = "receipts/"
	defaultExtension   = ".jpg"
	defaultContentType = "image/jpeg"

	missingImageMessage = "Missing key in request body: 'image_data'"
	missingKeyMessage   = "s3_key is required."
	uploadedMessage     = "Image uploaded successfully"
	presignedMessage    = "Presigned URL generated successfully"
)

type objectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	PresignGetObject(ctx context.Context, key string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}

type Service struct {
	store    objectStore
	fileName func() string
}

func NewService(store objectStore) *Service {
	return &Service{
		store: store,
		fileName: func() string {
			return uuid.NewString() + defaultExtension
		},
	}
}

type uploadRequest struct {
	ImageData string `json:"image_data"`
	FileName  string `json:"file_name"`
}

type uploadResponse struct {
	Message string `json:"message"`
	S3Key   string `json:"s3_key"`
	S3URL   string `json:"s3_url"`
}

func (s *Service) Upload(ctx context.Context, payload []byte) response.Response {
	var req uploadRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.ImageData == "" {
		return response.BadRequest(missingImageMessage)
	}

	body, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		err = errors.Wrap(err, "decode image_data")
		logger.Error("error decoding image", zap.Error(err))
		return response.InternalError(err)
	}

	name := s.fileName()
	if req.FileName != "" {
		name = path.Base(req.FileName)
	}
	key := keyPrefix + name

	if err = s.store.PutObject(ctx, key, body, contentType(body)); err != nil {
		logger.Error("error uploading image", zap.String("key", key), zap.Error(err))
		return response.InternalError(err)
	}
	return response.OK(uploadResponse{
		Message: uploadedMessage,
		S3Key:   key,
		S3URL:   s.store.PublicURL(key),
	})
}

func contentType(body []byte) string {
	detected := mimetype.Detect(body)
	if detected.Is("application/octet-stream") {
		return defaultContentType
	}
	return detected.String()
}

type presignRequest struct {
	S3Key string `json:"s3_key"`
}

type presignResponse struct {
	Message      string `json:"message"`
	PresignedURL string `json:"presigned_url"`
}

func (s *Service) Presign(ctx context.Context, payload []byte) response.Response {
	var req presignRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.S3Key == "" {
		return response.BadRequest(missingKeyMessage)
	}

	url, err := s.store.PresignGetObject(ctx, req.S3Key, PresignTTL)
	if err != nil {
		logger.Error("error presigning url", zap.String("key", req.S3Key), zap.Error(err))
		return response.InternalError(err)
	}
	return response.OK(presignResponse{Message: presignedMessage, PresignedURL: url})
}
