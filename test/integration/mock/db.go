// Package mock provides in-process stand-ins for the external services
// the integration suite needs: the database, Redis, and the AI provider.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database migrated with the
// application schema. A single connection keeps the memory database
// alive for the whole suite.
type Db struct {
	Conn   *gorm.DB
	models map[string]any
}

// NewDb returns the suite-wide database, creating and migrating it on
// first call. The models map is keyed by table name so assertion steps
// can look schemas up by the name a feature file uses.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{Conn: conn, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}
	return d
}

func (d *Db) migrate() error {
	// One AutoMigrate call so gorm orders tables by their references.
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}
	if err := d.Conn.AutoMigrate(modelList...); err != nil {
		return err
	}
	for table, model := range d.models {
		if !d.Conn.Migrator().HasTable(model) {
			return fmt.Errorf("table %s was not created", table)
		}
	}
	return nil
}

// Reset deletes every row from every table. Called between scenarios.
func (d *Db) Reset() error {
	session := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true})
	for table, model := range d.models {
		if err := session.Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// Count returns the number of rows in a table.
func (d *Db) Count(table string) (int64, error) {
	model, ok := d.models[table]
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int64
	if err := d.Conn.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
