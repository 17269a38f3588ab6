package repositories

import (
	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate applies the versioned schema migrations. It runs once at
// startup, before the server begins accepting requests.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202506010001_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "202506010002_create_documents",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&models.Document{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("documents")
			},
		},
	})
	return m.Migrate()
}
