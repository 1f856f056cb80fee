package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Concessionario/Dtos"
	"Concessionario/Services"
)

// VeicoloController binds the vehicle routes to VeicoloService.
type VeicoloController struct {
	Service *Services.VeicoloService
}

func NewVeicoloController(service *Services.VeicoloService) *VeicoloController {
	return &VeicoloController{Service: service}
}

func (c *VeicoloController) GetVeicoli(ctx *fiber.Ctx) error {
	veicoli, err := c.Service.GetVeicoli()
	if err != nil {
		return internalError(ctx, err, "Failed to list vehicles")
	}
	return ctx.JSON(veicoli)
}

func (c *VeicoloController) GetVeicoliDisponibili(ctx *fiber.Ctx) error {
	veicoli, err := c.Service.GetVeicoliDisponibili()
	if err != nil {
		return internalError(ctx, err, "Failed to list available vehicles")
	}
	return ctx.JSON(veicoli)
}

func (c *VeicoloController) GetVeicoloByNumeroTelaio(ctx *fiber.Ctx) error {
	veicolo, err := c.Service.GetVeicoloByNumeroTelaio(ctx.Params("numeroTelaio"))
	if err != nil {
		return internalError(ctx, err, "Failed to load vehicle")
	}
	if veicolo == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Veicolo non trovato"})
	}
	return ctx.JSON(veicolo)
}

func (c *VeicoloController) SearchVeicoli(ctx *fiber.Ctx) error {
	veicoli, err := c.Service.SearchVeicoli(
		ctx.Query("numeroTelaio"),
		ctx.Query("marca"),
		ctx.Query("modello"),
	)
	if err != nil {
		return internalError(ctx, err, "Vehicle search failed")
	}
	return ctx.JSON(veicoli)
}

// Insert creates a vehicle. The service hands back an absent result for a
// duplicate chassis number, which maps to 409 here.
func (c *VeicoloController) Insert(ctx *fiber.Ctx) error {
	var req Dtos.VeicoloRequestDto
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo della richiesta non valido"})
	}

	veicolo, err := c.Service.Insert(&req)
	if err != nil {
		if errors.Is(err, Services.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(ctx, err, "Failed to insert vehicle")
	}
	if veicolo == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Numero telaio già presente"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(veicolo)
}

func (c *VeicoloController) Update(ctx *fiber.Ctx) error {
	var patch Dtos.VeicoloUpdateDto
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo della richiesta non valido"})
	}

	veicolo, err := c.Service.Update(&patch, ctx.Params("numeroTelaio"))
	if err != nil {
		return internalError(ctx, err, "Failed to update vehicle")
	}
	if veicolo == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Veicolo non trovato"})
	}
	return ctx.JSON(veicolo)
}
