package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

// MovementHandler lectura del libro de movimientos.
type MovementHandler struct {
	movementUC *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movementUC *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{movementUC: movementUC}
}

// GetByID GET /api/movements/:id.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	movement, err := h.movementUC.GetByID(id, GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponse(movement))
}

// List GET /api/movements?batch_id=N&movement_type=OUT.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	filter := repository.MovementFilter{
		BatchID: int64(c.QueryInt("batch_id")),
		Type:    c.Query("movement_type"),
	}
	movements, err := h.movementUC.List(GetCompanyID(c), filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]dto.MovementResponse, 0, len(movements))
	for _, movement := range movements {
		resp = append(resp, toMovementResponse(movement))
	}
	return c.JSON(resp)
}

// Delete DELETE /api/movements/:id (solo admin).
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.movementUC.Delete(id, GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
