package Models

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Amministratore is the administrator account used by the login endpoint.
// Password holds a bcrypt hash, never the plain text.
type Amministratore struct {
	ID       uint   `gorm:"column:id_amministratore;primaryKey;autoIncrement" json:"idAmministratore"`
	Username string `gorm:"column:username" json:"username"`
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password" json:"-"`
}

func (Amministratore) TableName() string {
	return "amministratore"
}

// SeedAdmin creates a default administrator when the table is empty so a
// fresh database is immediately usable. Credentials come from ADMIN_EMAIL /
// ADMIN_PASSWORD, with local-dev defaults.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Amministratore{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@concessionario.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Amministratore{
		Username: "admin",
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.WithField("email", email).Info("Seeded default administrator")
	return nil
}
