package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/application/stock"
	"github.com/jhoicas/inventario-lotes/internal/domain"
)

// StockHandler operaciones contables de stock: entradas, salidas FEFO,
// ajustes, vencimientos y total disponible.
type StockHandler struct {
	stockUC *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockUC *stock.UseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// StockIn POST /api/products/:id/stock/in — entrada de mercancía (lote nuevo + movimiento IN).
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	productID := parseIDParam(c, "id")
	if productID == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.StockInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}

	var expiration *time.Time
	if req.ExpirationDate != "" {
		d, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiration_date debe ser YYYY-MM-DD"})
		}
		expiration = &d
	}

	batch, err := h.stockUC.RegisterEntry(c.Context(), stock.EntryInput{
		CompanyID:      GetCompanyID(c),
		ProductID:      productID,
		Quantity:       req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		ExpirationDate: expiration,
		Supplier:       req.Supplier,
		Code:           req.Code,
		Note:           req.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(batch))
}

// StockOut POST /api/products/:id/stock/out — salida FEFO; devuelve los
// movimientos OUT generados, uno por lote consumido.
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	productID := parseIDParam(c, "id")
	if productID == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.StockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	movements, err := h.stockUC.RegisterExit(c.Context(), GetCompanyID(c), productID, req.Quantity, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]dto.MovementResponse, 0, len(movements))
	for _, movement := range movements {
		resp = append(resp, toMovementResponse(movement))
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// StockTotal GET /api/products/:id/stock — disponibilidad total del producto.
func (h *StockHandler) StockTotal(c *fiber.Ctx) error {
	productID := parseIDParam(c, "id")
	if productID == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	total, err := h.stockUC.StockTotal(c.Context(), GetCompanyID(c), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockTotalResponse{ProductID: productID, Total: total})
}

// Adjust POST /api/batches/:id/adjust — fija la disponibilidad del lote tras
// un recuento físico.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	batchID := parseIDParam(c, "id")
	if batchID == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	if err := h.stockUC.AdjustStock(c.Context(), GetCompanyID(c), batchID, req.NewQuantity, req.Note); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Expire POST /api/batches/:id/expire — descarta lo que queda del lote y
// registra el movimiento EXPIRED.
func (h *StockHandler) Expire(c *fiber.Ctx) error {
	batchID := parseIDParam(c, "id")
	if batchID == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.stockUC.MarkExpired(c.Context(), GetCompanyID(c), batchID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
