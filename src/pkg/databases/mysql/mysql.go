package mysql

import (
	"errors"
	"fmt"
	"time"

	"ticketing-service/src/pkg/log"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type connection struct {
	db *sqlx.DB
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return c.db, nil
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	cfg := mysql.NewConfig()
	cfg.User = v.GetString("database.username")
	cfg.Passwd = v.GetString("database.password")
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", v.GetString("database.host"), v.GetInt("database.port"))
	cfg.DBName = v.GetString("database.name")
	cfg.ParseTime = true
	cfg.Loc = time.Local

	db, err := sqlx.Connect("mysql", cfg.FormatDSN())
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("database.pool.max"))
	db.SetMaxIdleConns(v.GetInt("database.pool.idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.lifetime")) * time.Minute)

	logger.Info("mysql", "database connection established", "InitConnection", cfg.Addr)
	return &connection{db: db}, nil
}
