// Package storagetest provides an isolated, migrated in-memory SQLite database for tests.
package storagetest

import (
	"testing"

	"linkhop/config"
	"linkhop/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	// Open caps SQLite at one connection, so each call gets its own private database.
	db, err := storage.Open(&config.DBConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, storage.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
