package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
)

// ProductHandler CRUD de productos de la empresa autenticada.
type ProductHandler struct {
	productUC *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// Create POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	product, err := h.productUC.Create(GetCompanyID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetByID GET /api/products/:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	product, err := h.productUC.GetByID(id, GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// List GET /api/products.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	products, err := h.productUC.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}
	return c.JSON(resp)
}

// Update PUT /api/products/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	product, err := h.productUC.Update(id, GetCompanyID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// Delete DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.productUC.Delete(id, GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toProductResponse(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           product.ID,
		CategoryID:   product.CategoryID,
		Name:         product.Name,
		Slug:         product.Slug,
		Presentation: product.Presentation,
		Supplier:     product.Supplier,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
