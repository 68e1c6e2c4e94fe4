package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/entity/preference"
)

const (
	attrUserID               = "userId"
	attrExpenseID            = "expenseId"
	attrNotificationsEnabled = "notificationsEnabled"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type tablesConfig interface {
	ExpensesTable() string
	UsersTable() string
}

// DynamoStorage keeps expenses in a table keyed (userId, expenseId) and
// preferences in a table keyed userId.
type DynamoStorage struct {
	api           dynamoAPI
	expensesTable string
	usersTable    string
}

func NewDynamoStorage(cfg aws.Config, tables tablesConfig) *DynamoStorage {
	return newDynamoStorage(dynamodb.NewFromConfig(cfg), tables)
}

func newDynamoStorage(api dynamoAPI, tables tablesConfig) *DynamoStorage {
	return &DynamoStorage{
		api:           api,
		expensesTable: tables.ExpensesTable(),
		usersTable:    tables.UsersTable(),
	}
}

func expenseItemKey(userID, expenseID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUserID:    &types.AttributeValueMemberS{Value: userID},
		attrExpenseID: &types.AttributeValueMemberS{Value: expenseID},
	}
}

func (s *DynamoStorage) PutExpense(ctx context.Context, rec expense.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return errors.Wrap(err, "marshal expense")
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.expensesTable),
		Item:      item,
	})
	return errors.Wrap(err, "put expense")
}

func (s *DynamoStorage) ListExpenses(ctx context.Context, userID string) ([]expense.Record, error) {
	keyCond := expression.Key(attrUserID).Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "build expenses query")
	}

	paginator := dynamodb.NewQueryPaginator(s.api, &dynamodb.QueryInput{
		TableName:                 aws.String(s.expensesTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	res := make([]expense.Record, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "query expenses")
		}

		var recs []expense.Record
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, errors.Wrap(err, "unmarshal expenses")
		}
		res = append(res, recs...)
	}
	return res, nil
}

func (s *DynamoStorage) UpdateExpense(ctx context.Context, userID, expenseID string, upd expense.Update) (expense.Update, error) {
	set := expression.
		Set(expression.Name("vendor"), expression.Value(upd.Vendor)).
		Set(expression.Name("amount"), expression.Value(upd.Amount)).
		Set(expression.Name("category"), expression.Value(upd.Category)).
		Set(expression.Name("description"), expression.Value(upd.Description)).
		Set(expression.Name("date"), expression.Value(upd.Date)).
		Set(expression.Name("isRecurring"), expression.Value(upd.IsRecurring))
	if upd.S3Key != "" {
		set = set.Set(expression.Name("s3_key"), expression.Value(upd.S3Key))
	}

	expr, err := expression.NewBuilder().WithUpdate(set).Build()
	if err != nil {
		return expense.Update{}, errors.Wrap(err, "build expense update")
	}

	out, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.expensesTable),
		Key:                       expenseItemKey(userID, expenseID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return expense.Update{}, errors.Wrap(err, "update expense")
	}

	var changed expense.Update
	if err = attributevalue.UnmarshalMap(out.Attributes, &changed); err != nil {
		return expense.Update{}, errors.Wrap(err, "unmarshal updated attributes")
	}
	return changed, nil
}

func (s *DynamoStorage) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.expensesTable),
		Key:       expenseItemKey(userID, expenseID),
	})
	return errors.Wrap(err, "delete expense")
}

func (s *DynamoStorage) GetPreference(ctx context.Context, userID string) (*preference.Record, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.usersTable),
		Key: map[string]types.AttributeValue{
			attrUserID: &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "get preference")
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec preference.Record
	if err = attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, errors.Wrap(err, "unmarshal preference")
	}
	return &rec, nil
}

func (s *DynamoStorage) PutPreference(ctx context.Context, rec preference.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return errors.Wrap(err, "marshal preference")
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.usersTable),
		Item:      item,
	})
	return errors.Wrap(err, "put preference")
}

// ListNotifiable scans the whole preferences table for opted-in users.
func (s *DynamoStorage) ListNotifiable(ctx context.Context) ([]preference.Record, error) {
	filter := expression.Name(attrNotificationsEnabled).Equal(expression.Value(true))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, errors.Wrap(err, "build preferences scan")
	}

	paginator := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{
		TableName:                 aws.String(s.usersTable),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	res := make([]preference.Record, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "scan preferences")
		}

		var recs []preference.Record
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, errors.Wrap(err, "unmarshal preferences")
		}
		res = append(res, recs...)
	}
	return res, nil
}
