package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Concessionario/Dtos"
	"Concessionario/FiberConfig"
	"Concessionario/Models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	app := FiberConfig.NewApp()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	admin := Models.Amministratore{Username: "admin", Email: email, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seeding administrator: %v", err)
	}
}

func postLogin(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(Dtos.LoginRequestDto{Email: email, Password: password})
	req, err := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestLoginSuccess(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, "admin@concessionario.local", "segreta")

	resp := postLogin(t, app, "admin@concessionario.local", "segreta")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out Dtos.LoginResponseDto
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !out.Success || out.Username == nil || *out.Username != "admin" {
		t.Fatalf("unexpected login response: %+v", out)
	}

	var hasCookie bool
	for _, c := range resp.Cookies() {
		if c.Name == "jwt" && c.Value != "" {
			hasCookie = true
		}
	}
	if !hasCookie {
		t.Fatal("expected a jwt session cookie on successful login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, "admin@concessionario.local", "segreta")

	resp := postLogin(t, app, "admin@concessionario.local", "sbagliata")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 (not 401/403), got %d", resp.StatusCode)
	}

	var out Dtos.LoginResponseDto
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Success || out.Username != nil {
		t.Fatalf("failure response must carry success=false and null username: %+v", out)
	}
}

func TestLoginUnknownEmailSameShape(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db, "admin@concessionario.local", "segreta")

	wrongUser := postLogin(t, app, "nobody@concessionario.local", "segreta")
	wrongPass := postLogin(t, app, "admin@concessionario.local", "sbagliata")

	if wrongUser.StatusCode != wrongPass.StatusCode {
		t.Fatalf("failure reason leaks via status: %d vs %d", wrongUser.StatusCode, wrongPass.StatusCode)
	}

	var a, b Dtos.LoginResponseDto
	if err := json.NewDecoder(wrongUser.Body).Decode(&a); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if err := json.NewDecoder(wrongPass.Body).Decode(&b); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if a.Message != b.Message {
		t.Fatalf("failure reason leaks via message: %q vs %q", a.Message, b.Message)
	}
}
