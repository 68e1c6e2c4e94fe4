package preferences

import (
	"context"

	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/entity/preference"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

const (
	userIDRequiredMessage = "userId is required."
	fieldsRequiredMessage = "userId and notificationsEnabled are required."

	fetchedMessage = "User preferences fetched successfully"
	updatedMessage = "User preferences updated successfully."
)

type preferenceTable interface {
	GetPreference(ctx context.Context, userID string) (*preference.Record, error)
	PutPreference(ctx context.Context, rec preference.Record) error
}

type Service struct {
	table preferenceTable
}

func NewService(table preferenceTable) *Service {
	return &Service{table: table}
}

type getRequest struct {
	UserID string `json:"userId"`
}

type getResponse struct {
	Message     string             `json:"message"`
	Preferences *preference.Record `json:"preferences"`
}

// Get answers with a null preferences object for unknown users.
func (s *Service) Get(ctx context.Context, payload []byte) response.Response {
	var req getRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.UserID == "" {
		return response.BadRequest(userIDRequiredMessage)
	}

	rec, err := s.table.GetPreference(ctx, req.UserID)
	if err != nil {
		logger.Error("error fetching preferences", zap.String("userId", req.UserID), zap.Error(err))
		return response.InternalError(err)
	}
	return response.OK(getResponse{Message: fetchedMessage, Preferences: rec})
}

type updateRequest struct {
	UserID               string `json:"userId"`
	NotificationsEnabled *bool  `json:"notificationsEnabled"`
}

type updateResponse struct {
	Message string `json:"message"`
}

// Update replaces the whole record. false is a valid flag value; only an
// absent or null flag is rejected.
func (s *Service) Update(ctx context.Context, payload []byte) response.Response {
	var req updateRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.UserID == "" || req.NotificationsEnabled == nil {
		return response.BadRequest(fieldsRequiredMessage)
	}

	rec := preference.Record{
		UserID:               req.UserID,
		NotificationsEnabled: *req.NotificationsEnabled,
	}
	if err := s.table.PutPreference(ctx, rec); err != nil {
		logger.Error("error updating preferences", zap.String("userId", req.UserID), zap.Error(err))
		return response.InternalError(err)
	}
	return response.OK(updateResponse{Message: updatedMessage})
}
