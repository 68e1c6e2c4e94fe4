package storage

import (
	"context"
	"sort"
	"sync"

	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/entity/preference"
)

type expenseKey struct {
	userID    string
	expenseID string
}

// InMemStorage keeps both tables in process memory. It backs the dev
// server and the handler tests.
type InMemStorage struct {
	mu          sync.Mutex
	expenses    map[expenseKey]expense.Record
	preferences map[string]preference.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses:    make(map[expenseKey]expense.Record),
		preferences: make(map[string]preference.Record),
	}
}

func (s *InMemStorage) PutExpense(_ context.Context, rec expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses[expenseKey{rec.UserID, rec.ExpenseID}] = rec
	return nil
}

// ListExpenses returns the owner's records ordered by expense id, the
// order a range-key query yields.
func (s *InMemStorage) ListExpenses(_ context.Context, userID string) ([]expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]expense.Record, 0)
	for k, rec := range s.expenses {
		if k.userID == userID {
			res = append(res, rec)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ExpenseID < res[j].ExpenseID
	})
	return res, nil
}

func (s *InMemStorage) UpdateExpense(_ context.Context, userID, expenseID string, upd expense.Update) (expense.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := expenseKey{userID, expenseID}
	rec, ok := s.expenses[key]
	if !ok {
		rec = expense.Record{UserID: userID, ExpenseID: expenseID}
	}
	upd.Apply(&rec)
	s.expenses[key] = rec
	return upd, nil
}

func (s *InMemStorage) DeleteExpense(_ context.Context, userID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.expenses, expenseKey{userID, expenseID})
	return nil
}

func (s *InMemStorage) GetPreference(_ context.Context, userID string) (*preference.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.preferences[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *InMemStorage) PutPreference(_ context.Context, rec preference.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[rec.UserID] = rec
	return nil
}

func (s *InMemStorage) ListNotifiable(_ context.Context) ([]preference.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]preference.Record, 0)
	for _, rec := range s.preferences {
		if rec.NotificationsEnabled {
			res = append(res, rec)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].UserID < res[j].UserID
	})
	return res, nil
}
