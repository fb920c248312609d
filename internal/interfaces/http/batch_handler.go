package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
)

// BatchHandler lectura y borrado administrativo de lotes. Las altas de lote
// entran por el motor de stock (POST /api/products/:id/stock/in), nunca por aquí.
type BatchHandler struct {
	batchUC *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(batchUC *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{batchUC: batchUC}
}

// GetByID GET /api/batches/:id.
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	batch, err := h.batchUC.GetByID(id, GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBatchResponse(batch))
}

// List GET /api/batches?product_id=N.
func (h *BatchHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	productID := int64(c.QueryInt("product_id"))
	batches, err := h.batchUC.List(GetCompanyID(c), productID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]dto.BatchResponse, 0, len(batches))
	for _, batch := range batches {
		resp = append(resp, toBatchResponse(batch))
	}
	return c.JSON(resp)
}

// Delete DELETE /api/batches/:id (solo admin).
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.batchUC.Delete(id, GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toBatchResponse(batch *entity.Batch) dto.BatchResponse {
	resp := dto.BatchResponse{
		ID:                batch.ID,
		ProductID:         batch.ProductID,
		Code:              batch.Code,
		QuantityReceived:  batch.QuantityReceived,
		QuantityAvailable: batch.QuantityAvailable,
		PurchasePrice:     batch.PurchasePrice,
		Supplier:          batch.Supplier,
		ReceivedAt:        batch.ReceivedAt,
	}
	if batch.ExpirationDate != nil {
		d := batch.ExpirationDate.Format("2006-01-02")
		resp.ExpirationDate = &d
	}
	return resp
}

func toMovementResponse(movement *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        movement.ID,
		BatchID:   movement.BatchID,
		Type:      movement.Type,
		Quantity:  movement.Quantity,
		Note:      movement.Note,
		Reference: movement.Reference,
		CreatedAt: movement.CreatedAt,
	}
}
