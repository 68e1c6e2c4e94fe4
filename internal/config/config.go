package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnv     = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

const (
	BackendDynamo   = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type config struct {
	App      AppConfig      `yaml:"app"`
	AWS      AWSConfig      `yaml:"aws"`
	Storage  StorageConfig  `yaml:"storage"`
	Bucket   BucketConfig   `yaml:"bucket"`
	Bedrock  BedrockConfig  `yaml:"bedrock"`
	Email    EmailConfig    `yaml:"email"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type Service struct {
	config config
}

// New reads the optional YAML file and then applies environment overrides.
// Handlers deployed as Lambdas usually run with environment only.
func New() (*Service, error) {
	s := &Service{config: defaults()}

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	if err := s.readFile(path); err != nil {
		return nil, err
	}

	s.applyEnv(os.LookupEnv)

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			DevAddr: ":8080",
		},
		Storage: StorageConfig{
			StorageBackend: BackendDynamo,
			UsersTableName: "SmartReceiptsUsers",
		},
		Bedrock: BedrockConfig{
			Model: "anthropic.claude-3-haiku-20240307-v1:0",
		},
		Email: EmailConfig{
			SenderAddress: "test@whattocookbot.com",
		},
		Postgres: PostgresConfig{
			SSL: "disable",
		},
		Kafka: KafkaConfig{
			Topic: "expense-events",
		},
	}
}

func (s *Service) readFile(path string) error {
	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return errors.Wrap(err, "parsing yaml")
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (s *Service) applyEnv(lookup lookupFunc) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set("HANDLER_NAME", &s.config.App.Handler)
	if s.config.App.Handler == "" {
		set("_HANDLER", &s.config.App.Handler)
	}
	set("DEV_SERVER_ADDR", &s.config.App.DevAddr)

	set("AWS_REGION", &s.config.AWS.RegionName)
	set("AWS_ENDPOINT_URL", &s.config.AWS.Endpoint)

	set("STORAGE_BACKEND", &s.config.Storage.StorageBackend)
	set("DYNAMODB_TABLE_NAME", &s.config.Storage.ExpensesTableName)
	set("DYNAMODB_USERS_TABLE_NAME", &s.config.Storage.UsersTableName)

	set("S3_BUCKET_NAME", &s.config.Bucket.BucketName)
	set("BEDROCK_MODEL_ID", &s.config.Bedrock.Model)
	set("SENDER_EMAIL", &s.config.Email.SenderAddress)

	set("POSTGRES_HOST", &s.config.Postgres.Hostname)
	set("POSTGRES_DB", &s.config.Postgres.Db)
	set("POSTGRES_USER", &s.config.Postgres.User)
	set("POSTGRES_PASSWORD", &s.config.Postgres.Pswd)
	set("POSTGRES_SSLMODE", &s.config.Postgres.SSL)

	var brokers string
	set("KAFKA_BROKERS", &brokers)
	if brokers != "" {
		s.config.Kafka.BrokerList = splitList(brokers)
	}
	set("KAFKA_EXPENSE_TOPIC", &s.config.Kafka.Topic)
}

func (s *Service) validate() error {
	switch s.config.Storage.StorageBackend {
	case BackendDynamo, BackendPostgres, BackendMemory:
	default:
		return errors.Errorf("unknown storage backend %q", s.config.Storage.StorageBackend)
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) AWS() *AWSConfig {
	return &s.config.AWS
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Bucket() *BucketConfig {
	return &s.config.Bucket
}

func (s *Service) Bedrock() *BedrockConfig {
	return &s.config.Bedrock
}

func (s *Service) Email() *EmailConfig {
	return &s.config.Email
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}
