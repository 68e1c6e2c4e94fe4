package config

type AppConfig struct {
	Handler string `yaml:"handler"`
	DevAddr string `yaml:"dev-server-addr"`
}

func (s *AppConfig) HandlerName() string {
	return s.Handler
}

func (s *AppConfig) DevServerAddr() string {
	return s.DevAddr
}
