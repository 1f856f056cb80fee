package Models

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database connection and runs migrations. A MySQL DSN is
// built from the environment when DB_HOST is set; otherwise a local sqlite
// file is used so the server can run without external services.
func Connect() error {
	var err error

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "concessionario.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	if err := SeedAdmin(DB); err != nil {
		return err
	}

	log.Info("Database connected and migrated")
	return nil
}

// Migrate creates or updates the schema. Base tables first, then the ones
// holding foreign keys to them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Amministratore{},
		&Configurazione{},
		&Utente{},
	); err != nil {
		return err
	}

	return db.AutoMigrate(
		&Veicolo{},
		&Movimento{},
	)
}
