//go:build integration

package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/infra/db"
)

var once sync.Once
var database *Db

// Db is a shared in-memory SQLite database for the feature suite.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	models   map[string]any
	order    []string
}

// NewDb opens the shared database once and migrates models into it.
func NewDb(name string, models []any) *Db {
	once.Do(func() {
		database = open(name, models)
	})
	return database
}

func open(name string, models []any) *Db {
	conn, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to open database. err: %s", err.Error()))
	}

	newDbMock := &Db{
		Database: conn,
		DbConn:   conn.DB(),
		models:   make(map[string]any, len(models)),
	}
	for _, model := range models {
		table, err := newDbMock.tableName(model)
		if err != nil {
			panic(err)
		}
		newDbMock.models[table] = model
		newDbMock.order = append(newDbMock.order, table)
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row, soft-deleted ones included.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		model := d.models[d.order[i]]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", d.order[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

func (d *Db) tableName(model any) (string, error) {
	stmt := &gorm.Statement{DB: d.DbConn}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}
