package config

type BucketConfig struct {
	BucketName string `yaml:"name"`
}

func (b *BucketConfig) Name() string {
	return b.BucketName
}

type BedrockConfig struct {
	Model string `yaml:"model-id"`
}

func (b *BedrockConfig) ModelID() string {
	return b.Model
}

type EmailConfig struct {
	SenderAddress string `yaml:"sender"`
}

func (e *EmailConfig) Sender() string {
	return e.SenderAddress
}
