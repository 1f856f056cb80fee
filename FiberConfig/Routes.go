package FiberConfig

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Concessionario/Controllers"
	"Concessionario/Models"
	"Concessionario/Services"
	"Concessionario/middleware"
)

// SetupRoutes wires services, controllers and the route table onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	utenteController := Controllers.NewUtenteController(Services.NewUtenteService(db))
	veicoloController := Controllers.NewVeicoloController(Services.NewVeicoloService(db))
	authController := Controllers.NewAuthController(Services.NewAuthService(db))
	databaseController := Controllers.NewDatabaseController(Services.NewDatabaseService(db))

	api := app.Group("/api", middleware.DefaultPolicy().Enforce())

	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)
	auth.Post("/logout", authController.Logout)

	utenti := api.Group("/utenti")
	utenti.Get("/", utenteController.GetUtenti)
	utenti.Get("/search", utenteController.SearchUtenti)
	utenti.Get("/:codiceFiscale", utenteController.GetUtenteByCodiceFiscale)
	utenti.Post("/", utenteController.Insert)
	utenti.Put("/", utenteController.Update)
	utenti.Put("/:codiceFiscale", utenteController.Update)

	veicoli := api.Group("/veicoli")
	veicoli.Get("/", veicoloController.GetVeicoli)
	veicoli.Get("/disponibili", veicoloController.GetVeicoliDisponibili)
	veicoli.Get("/search", veicoloController.SearchVeicoli)
	veicoli.Get("/:numeroTelaio", veicoloController.GetVeicoloByNumeroTelaio)
	veicoli.Post("/", veicoloController.Insert)
	veicoli.Put("/:numeroTelaio", veicoloController.Update)

	database := api.Group("/database")
	database.Post("/reset-movimento-sequence", databaseController.ResetMovimentoSequence)
	database.Post("/reset-configurazione-sequence", databaseController.ResetConfigurazioneSequence)
	database.Post("/reset-amministratore-sequence", databaseController.ResetAmministratoreSequence)
	database.Post("/create-movimento-delete-trigger", databaseController.CreateMovimentoDeleteTrigger)
	// Legacy GET variant kept for old clients; same service path as the POST.
	database.Get("/reset-movimento-sequence", databaseController.ResetMovimentoSequence)
}

// NewApp builds the Fiber app with CORS restricted to the two local
// frontend origins, compression and request logging.
func NewApp() *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestLogger())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5174",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	}))

	return app
}

// FiberConfig builds the app, registers the routes and serves.
func FiberConfig() {
	app := NewApp()
	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Server up on port ", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
