package config

type AWSConfig struct {
	RegionName string `yaml:"region"`
	Endpoint   string `yaml:"endpoint"`
}

func (s *AWSConfig) Region() string {
	return s.RegionName
}

// EndpointURL overrides every service endpoint, e.g. for localstack.
func (s *AWSConfig) EndpointURL() string {
	return s.Endpoint
}
