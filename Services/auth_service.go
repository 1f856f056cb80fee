package Services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Concessionario/Models"
)

const TokenLifetime = 24 * time.Hour

// AuthService checks administrator credentials and issues the session token.
type AuthService struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuthService(db *gorm.DB) *AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}
	return &AuthService{DB: db, Secret: []byte(secret)}
}

// Authenticate returns the administrator for valid credentials. Unknown
// email and wrong password both come back as ErrAuthentication so the
// response never says which one failed.
func (s *AuthService) Authenticate(email, password string) (*Models.Amministratore, error) {
	var admin Models.Amministratore
	err := s.DB.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("email", email).Warn("Tentativo di login fallito")
		return nil, ErrAuthentication
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		log.WithField("email", email).Warn("Tentativo di login fallito")
		return nil, ErrAuthentication
	}

	return &admin, nil
}

// IssueToken builds the signed JWT establishing the session principal.
func (s *AuthService) IssueToken(admin *Models.Amministratore) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatUint(uint64(admin.ID), 10),
		Subject:   admin.Email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
