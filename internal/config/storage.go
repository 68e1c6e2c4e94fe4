package config

type StorageConfig struct {
	StorageBackend    string `yaml:"backend"`
	ExpensesTableName string `yaml:"expenses-table"`
	UsersTableName    string `yaml:"users-table"`
}

func (s *StorageConfig) Backend() string {
	return s.StorageBackend
}

func (s *StorageConfig) ExpensesTable() string {
	return s.ExpensesTableName
}

func (s *StorageConfig) UsersTable() string {
	return s.UsersTableName
}
