package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Concessionario/Services"
)

// DatabaseController exposes the maintenance endpoints. All of them go
// through DatabaseService; the legacy GET reset route is kept for
// compatibility but shares the same implementation.
type DatabaseController struct {
	Service *Services.DatabaseService
}

func NewDatabaseController(service *Services.DatabaseService) *DatabaseController {
	return &DatabaseController{Service: service}
}

func (c *DatabaseController) ResetMovimentoSequence(ctx *fiber.Ctx) error {
	return c.resetSequence(ctx, "movimento")
}

func (c *DatabaseController) ResetConfigurazioneSequence(ctx *fiber.Ctx) error {
	return c.resetSequence(ctx, "configurazione")
}

func (c *DatabaseController) ResetAmministratoreSequence(ctx *fiber.Ctx) error {
	return c.resetSequence(ctx, "amministratore")
}

func (c *DatabaseController) resetSequence(ctx *fiber.Ctx, table string) error {
	if err := c.Service.ResetSequence(table); err != nil {
		if errors.Is(err, Services.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(ctx, err, "Sequence reset failed")
	}
	return ctx.JSON(fiber.Map{
		"message": "Sequenza della tabella " + table + " resettata con successo",
	})
}

func (c *DatabaseController) CreateMovimentoDeleteTrigger(ctx *fiber.Ctx) error {
	if err := c.Service.CreateMovimentoDeleteTrigger(); err != nil {
		return internalError(ctx, err, "Trigger creation failed")
	}
	return ctx.JSON(fiber.Map{
		"message": "Trigger per l'aggiornamento della disponibilità del veicolo creato con successo",
	})
}
