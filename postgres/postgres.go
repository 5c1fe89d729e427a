package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

func (o Options) dsn() string {
	sslmode := "disable"
	if o.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.DBUser, o.Password, o.DBName, sslmode,
	)
}

// NewConnection opens a gorm handle. SQL statements are only logged on error.
func NewConnection(opts Options) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(opts.dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
