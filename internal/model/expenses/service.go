package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

const (
	userIDRequiredMessage = "userId is required."
	keysRequiredMessage   = "userId and expenseId are required."

	savedMessage   = "Expense saved successfully"
	fetchedMessage = "Expenses fetched successfully"
	updatedMessage = "Expense updated successfully"
	deletedMessage = "Expense deleted successfully"
)

type expenseTable interface {
	PutExpense(ctx context.Context, rec expense.Record) error
	ListExpenses(ctx context.Context, userID string) ([]expense.Record, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, upd expense.Update) (expense.Update, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Service serves the four expense handlers over one table. Events are
// optional: with a nil publisher nothing is emitted.
type Service struct {
	table  expenseTable
	events eventPublisher
	newID  func() string
	now    func() time.Time
}

func NewService(table expenseTable, events eventPublisher) *Service {
	return &Service{
		table:  table,
		events: events,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

type fields struct {
	Vendor      *string         `json:"vendor"`
	Amount      *expense.Amount `json:"amount"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Date        *string         `json:"date"`
	S3Key       string          `json:"s3_key"`
	IsRecurring bool            `json:"isRecurring"`
}

// update fills every absent text field with expense.NotApplicable.
func (f fields) update() expense.Update {
	return expense.Update{
		Vendor:      expense.OrDefault(f.Vendor),
		Amount:      expense.AmountOrDefault(f.Amount),
		Category:    expense.OrDefault(f.Category),
		Description: expense.OrDefault(f.Description),
		Date:        expense.OrDefault(f.Date),
		IsRecurring: f.IsRecurring,
		S3Key:       f.S3Key,
	}
}

type saveRequest struct {
	UserID string `json:"userId"`
	fields
}

type saveResponse struct {
	Message   string `json:"message"`
	ExpenseID string `json:"expenseId"`
}

func (s *Service) Save(ctx context.Context, payload []byte) response.Response {
	var req saveRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.UserID == "" {
		return response.BadRequest(userIDRequiredMessage)
	}

	rec := expense.Record{
		UserID:    req.UserID,
		ExpenseID: s.newID(),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	req.update().Apply(&rec)

	if err := s.table.PutExpense(ctx, rec); err != nil {
		logger.Error("error saving expense", zap.String("userId", rec.UserID), zap.Error(err))
		return response.InternalError(err)
	}

	s.publish(ctx, EventSaved, rec.UserID, rec.ExpenseID)
	return response.OK(saveResponse{Message: savedMessage, ExpenseID: rec.ExpenseID})
}

type listRequest struct {
	UserID string `json:"userId"`
}

type listResponse struct {
	Message  string           `json:"message"`
	Expenses []expense.Record `json:"expenses"`
}

func (s *Service) List(ctx context.Context, payload []byte) response.Response {
	var req listRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if req.UserID == "" {
		return response.BadRequest(userIDRequiredMessage)
	}

	recs, err := s.table.ListExpenses(ctx, req.UserID)
	if err != nil {
		logger.Error("error fetching expenses", zap.String("userId", req.UserID), zap.Error(err))
		return response.InternalError(err)
	}
	if recs == nil {
		recs = []expense.Record{}
	}
	return response.OK(listResponse{Message: fetchedMessage, Expenses: recs})
}

type keyRequest struct {
	UserID    string `json:"userId"`
	ExpenseID string `json:"expenseId"`
}

func (r keyRequest) valid() bool {
	return r.UserID != "" && r.ExpenseID != ""
}

type updateRequest struct {
	keyRequest
	fields
}

type updateResponse struct {
	Message           string         `json:"message"`
	UpdatedAttributes expense.Update `json:"updatedAttributes"`
}

// Update replaces every editable field. Fields missing from the request
// are reset to expense.NotApplicable; only the image key is kept when
// absent.
func (s *Service) Update(ctx context.Context, payload []byte) response.Response {
	var req updateRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if !req.valid() {
		return response.BadRequest(keysRequiredMessage)
	}

	changed, err := s.table.UpdateExpense(ctx, req.UserID, req.ExpenseID, req.update())
	if err != nil {
		logger.Error("error updating expense",
			zap.String("userId", req.UserID),
			zap.String("expenseId", req.ExpenseID),
			zap.Error(err),
		)
		return response.InternalError(err)
	}

	s.publish(ctx, EventUpdated, req.UserID, req.ExpenseID)
	return response.OK(updateResponse{Message: updatedMessage, UpdatedAttributes: changed})
}

type messageResponse struct {
	Message string `json:"message"`
}

// Delete succeeds for keys that do not exist.
func (s *Service) Delete(ctx context.Context, payload []byte) response.Response {
	var req keyRequest
	if resp, ok := response.Decode(payload, &req); !ok {
		return resp
	}
	if !req.valid() {
		return response.BadRequest(keysRequiredMessage)
	}

	if err := s.table.DeleteExpense(ctx, req.UserID, req.ExpenseID); err != nil {
		logger.Error("error deleting expense",
			zap.String("userId", req.UserID),
			zap.String("expenseId", req.ExpenseID),
			zap.Error(err),
		)
		return response.InternalError(err)
	}

	s.publish(ctx, EventDeleted, req.UserID, req.ExpenseID)
	return response.OK(messageResponse{Message: deletedMessage})
}
