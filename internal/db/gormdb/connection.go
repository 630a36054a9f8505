package gormdb

import (
	"github.com/oggyb/sms-dispatch/internal/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type GormDB struct {
	conn *gorm.DB
}

// New opens a Postgres connection. Driver errors such as unique violations
// are translated into gorm's portable errors (gorm.ErrDuplicatedKey).
func New(dsn string) (*GormDB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return &GormDB{conn: conn}, nil
}

func (g *GormDB) Conn() any {
	return g.conn
}

// Migrate creates or updates the tables for the given models.
func (g *GormDB) Migrate(models ...any) error {
	return g.conn.AutoMigrate(models...)
}

// verify it satisfies db.DB
var _ db.DB = (*GormDB)(nil)
