package config

type PostgresConfig struct {
	Hostname string `yaml:"host"`
	Db       string `yaml:"db"`
	User     string `yaml:"username"`
	Pswd     string `yaml:"password"`
	SSL      string `yaml:"sslmode"`
}

func (s *PostgresConfig) Host() string {
	return s.Hostname
}

func (s *PostgresConfig) Database() string {
	return s.Db
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pswd
}

func (s *PostgresConfig) SSLMode() string {
	return s.SSL
}
