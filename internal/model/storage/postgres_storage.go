package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/entity/preference"
	"max.ks1230/smart-receipts/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var expenseColumns = []string{
	"user_id", "expense_id", "vendor", "amount", "category",
	"description", "date", "s3_key", "is_recurring", "created_at",
}

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = runMigrations(db); err != nil {
		return nil, err
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	}
}

func nullableKey(key string) sql.NullString {
	return sql.NullString{String: key, Valid: key != ""}
}

func insertExpenseQuery(rec expense.Record) sq.InsertBuilder {
	return psql.Insert("expenses").
		Columns(expenseColumns...).
		Values(rec.UserID, rec.ExpenseID, rec.Vendor, rec.Amount, rec.Category,
			rec.Description, rec.Date, nullableKey(rec.S3Key), rec.IsRecurring, rec.CreatedAt)
}

// updateExpenseQuery upserts like a key-value update: an unknown key
// creates the row, and a NULL s3_key keeps the stored one.
func updateExpenseQuery(userID, expenseID string, upd expense.Update) sq.InsertBuilder {
	return psql.Insert("expenses").
		Columns("user_id", "expense_id", "vendor", "amount", "category",
			"description", "date", "s3_key", "is_recurring").
		Values(userID, expenseID, upd.Vendor, upd.Amount, upd.Category,
			upd.Description, upd.Date, nullableKey(upd.S3Key), upd.IsRecurring).
		Suffix(`ON CONFLICT (user_id, expense_id) DO UPDATE SET
			vendor = EXCLUDED.vendor,
			amount = EXCLUDED.amount,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			date = EXCLUDED.date,
			s3_key = COALESCE(EXCLUDED.s3_key, expenses.s3_key),
			is_recurring = EXCLUDED.is_recurring`)
}

func listExpensesQuery(userID string) sq.SelectBuilder {
	return psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("expense_id")
}

func deleteExpenseQuery(userID, expenseID string) sq.DeleteBuilder {
	return psql.Delete("expenses").
		Where(sq.Eq{"user_id": userID, "expense_id": expenseID})
}

func putPreferenceQuery(rec preference.Record) sq.InsertBuilder {
	return psql.Insert("preferences").
		Columns("user_id", "notifications_enabled").
		Values(rec.UserID, rec.NotificationsEnabled).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET notifications_enabled = EXCLUDED.notifications_enabled")
}

func (s *PostgresStorage) PutExpense(ctx context.Context, rec expense.Record) error {
	_, err := insertExpenseQuery(rec).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "put expense")
}

func (s *PostgresStorage) ListExpenses(ctx context.Context, userID string) ([]expense.Record, error) {
	rows, err := listExpensesQuery(userID).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := make([]expense.Record, 0)
	for rows.Next() {
		var (
			e     expense.Record
			s3Key sql.NullString
		)
		err = rows.Scan(&e.UserID, &e.ExpenseID, &e.Vendor, &e.Amount, &e.Category,
			&e.Description, &e.Date, &s3Key, &e.IsRecurring, &e.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "list expenses")
		}
		e.S3Key = s3Key.String
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	return res, nil
}

func (s *PostgresStorage) UpdateExpense(ctx context.Context, userID, expenseID string, upd expense.Update) (expense.Update, error) {
	_, err := updateExpenseQuery(userID, expenseID, upd).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return expense.Update{}, errors.Wrap(err, "update expense")
	}
	return upd, nil
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	_, err := deleteExpenseQuery(userID, expenseID).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "delete expense")
}

func (s *PostgresStorage) GetPreference(ctx context.Context, userID string) (*preference.Record, error) {
	query := psql.Select("user_id", "notifications_enabled").
		From("preferences").
		Where(sq.Eq{"user_id": userID})

	var rec preference.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&rec.UserID, &rec.NotificationsEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get preference")
	}
	return &rec, nil
}

func (s *PostgresStorage) PutPreference(ctx context.Context, rec preference.Record) error {
	_, err := putPreferenceQuery(rec).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "put preference")
}

func (s *PostgresStorage) ListNotifiable(ctx context.Context) ([]preference.Record, error) {
	query := psql.Select("user_id", "notifications_enabled").
		From("preferences").
		Where(sq.Eq{"notifications_enabled": true}).
		OrderBy("user_id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list notifiable users")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := make([]preference.Record, 0)
	for rows.Next() {
		var rec preference.Record
		if err = rows.Scan(&rec.UserID, &rec.NotificationsEnabled); err != nil {
			return nil, errors.Wrap(err, "list notifiable users")
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list notifiable users")
	}
	return res, nil
}
