package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"Concessionario/Dtos"
	"Concessionario/Services"
)

// UtenteController binds the customer routes to UtenteService.
type UtenteController struct {
	Service *Services.UtenteService
}

func NewUtenteController(service *Services.UtenteService) *UtenteController {
	return &UtenteController{Service: service}
}

// GetUtenti lists all customers. When the codiceFiscale query parameter is
// present it behaves as a single lookup instead, matching the legacy
// query-param variant of the API.
func (c *UtenteController) GetUtenti(ctx *fiber.Ctx) error {
	if cf := ctx.Query("codiceFiscale"); cf != "" {
		return c.getByCodiceFiscale(ctx, cf)
	}

	utenti, err := c.Service.GetUtenti()
	if err != nil {
		return internalError(ctx, err, "Failed to list customers")
	}
	return ctx.JSON(utenti)
}

func (c *UtenteController) GetUtenteByCodiceFiscale(ctx *fiber.Ctx) error {
	return c.getByCodiceFiscale(ctx, ctx.Params("codiceFiscale"))
}

func (c *UtenteController) getByCodiceFiscale(ctx *fiber.Ctx, codiceFiscale string) error {
	utente, err := c.Service.GetUtenteByCodiceFiscale(codiceFiscale)
	if err != nil {
		return internalError(ctx, err, "Failed to load customer")
	}
	if utente == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utente non trovato"})
	}
	return ctx.JSON(utente)
}

func (c *UtenteController) SearchUtenti(ctx *fiber.Ctx) error {
	utenti, err := c.Service.SearchUtenti(
		ctx.Query("nome"),
		ctx.Query("cognome"),
		ctx.Query("email"),
	)
	if err != nil {
		return internalError(ctx, err, "Customer search failed")
	}
	return ctx.JSON(utenti)
}

func (c *UtenteController) Insert(ctx *fiber.Ctx) error {
	var req Dtos.UtenteRequestDto
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo della richiesta non valido"})
	}

	utente, err := c.Service.Insert(&req)
	if err != nil {
		switch {
		case errors.Is(err, Services.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, Services.ErrConflict):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return internalError(ctx, err, "Failed to insert customer")
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(utente)
}

// Update patches a customer by codice fiscale, taken from the path or from
// the codiceFiscale query parameter.
func (c *UtenteController) Update(ctx *fiber.Ctx) error {
	codiceFiscale := ctx.Params("codiceFiscale")
	if codiceFiscale == "" {
		codiceFiscale = ctx.Query("codiceFiscale")
	}
	if codiceFiscale == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Codice fiscale mancante"})
	}

	var patch Dtos.UtenteUpdateDto
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo della richiesta non valido"})
	}

	utente, err := c.Service.Update(&patch, codiceFiscale)
	if err != nil {
		return internalError(ctx, err, "Failed to update customer")
	}
	if utente == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utente non trovato"})
	}
	return ctx.JSON(utente)
}

// internalError logs the full error and answers with a generic message so
// storage details never reach the client.
func internalError(ctx *fiber.Ctx, err error, msg string) error {
	log.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Errore interno del server"})
}
