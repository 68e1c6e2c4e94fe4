package app

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/clients/awsconf"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
	"max.ks1230/smart-receipts/internal/clients/bucket"
	"max.ks1230/smart-receipts/internal/clients/email"
	"max.ks1230/smart-receipts/internal/clients/kafka"
	"max.ks1230/smart-receipts/internal/config"
	"max.ks1230/smart-receipts/internal/entity/expense"
	"max.ks1230/smart-receipts/internal/entity/preference"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/expenses"
	"max.ks1230/smart-receipts/internal/model/images"
	"max.ks1230/smart-receipts/internal/model/notifications"
	"max.ks1230/smart-receipts/internal/model/preferences"
	"max.ks1230/smart-receipts/internal/model/receipts"
	"max.ks1230/smart-receipts/internal/model/router"
	"max.ks1230/smart-receipts/internal/model/storage"
)

// Handler names, as passed in HANDLER_NAME or the dev server path.
const (
	Categorize        = "categorize"
	Extract           = "extract"
	SaveExpense       = "save-expense"
	GetExpenses       = "get-expenses"
	UpdateExpense     = "update-expense"
	DeleteExpense     = "delete-expense"
	GetPreferences    = "get-preferences"
	UpdatePreferences = "update-preferences"
	UploadImage       = "upload-image"
	PresignedURL      = "presigned-url"
	SendNotifications = "send-notifications"
)

type tables interface {
	PutExpense(ctx context.Context, rec expense.Record) error
	ListExpenses(ctx context.Context, userID string) ([]expense.Record, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, upd expense.Update) (expense.Update, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	GetPreference(ctx context.Context, userID string) (*preference.Record, error)
	PutPreference(ctx context.Context, rec preference.Record) error
	ListNotifiable(ctx context.Context) ([]preference.Record, error)
}

type objects interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	PresignGetObject(ctx context.Context, key string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}

type model interface {
	AskAboutImage(ctx context.Context, img bedrock.Image, prompt string, maxTokens int) (string, error)
}

type mailer interface {
	SendText(ctx context.Context, to, subject, text string) error
}

type publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Clients are the process-wide handles every handler is built on.
// Events may be nil.
type Clients struct {
	Tables  tables
	Objects objects
	Model   model
	Mailer  mailer
	Events  publisher
}

// Register adds every handler to r.
func Register(r *router.Router, c Clients) {
	categorizer := receipts.NewCategorizer(c.Model)
	extractor := receipts.NewExtractor(c.Objects, c.Model)
	expenseService := expenses.NewService(c.Tables, c.Events)
	preferenceService := preferences.NewService(c.Tables)
	imageService := images.NewService(c.Objects)
	notifier := notifications.NewNotifier(c.Tables, c.Mailer)

	r.Register(Categorize, categorizer.Handle)
	r.Register(Extract, extractor.Handle)
	r.Register(SaveExpense, expenseService.Save)
	r.Register(GetExpenses, expenseService.List)
	r.Register(UpdateExpense, expenseService.Update)
	r.Register(DeleteExpense, expenseService.Delete)
	r.Register(GetPreferences, preferenceService.Get)
	r.Register(UpdatePreferences, preferenceService.Update)
	r.Register(UploadImage, imageService.Upload)
	r.Register(PresignedURL, imageService.Presign)
	r.Register(SendNotifications, notifier.Handle)
}

// App owns the router and the connections behind it.
type App struct {
	Router  *router.Router
	closers []func()
}

// New connects every client the configuration asks for and registers all
// handlers. Close releases what New opened.
func New(ctx context.Context, conf *config.Service) (*App, error) {
	logger.Info("app init - start", zap.String("storage", conf.Storage().Backend()))

	a := &App{Router: router.New()}

	awsCfg, err := awsconf.Load(ctx, conf.AWS())
	if err != nil {
		return nil, err
	}

	tbl, err := a.openTables(awsCfg, conf)
	if err != nil {
		a.Close()
		return nil, err
	}

	clients := Clients{
		Tables:  tbl,
		Objects: bucket.New(awsCfg, conf.Bucket().Name(), conf.AWS().EndpointURL() != ""),
		Model:   bedrock.New(awsCfg, conf.Bedrock()),
		Mailer:  email.New(awsCfg, conf.Email()),
	}

	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, producer.Close)
		clients.Events = producer
	}

	Register(a.Router, clients)

	logger.Info("app init - end", zap.Strings("handlers", a.Router.Names()))
	return a, nil
}

func (a *App) openTables(awsCfg aws.Config, conf *config.Service) (tables, error) {
	switch backend := conf.Storage().Backend(); backend {
	case config.BackendDynamo:
		return storage.NewDynamoStorage(awsCfg, conf.Storage()), nil
	case config.BackendPostgres:
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return db, nil
	case config.BackendMemory:
		return storage.NewInMemStorage(), nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
