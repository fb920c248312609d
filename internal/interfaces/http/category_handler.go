package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/application/usecase"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
)

// CategoryHandler CRUD de categorías de la empresa autenticada.
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// Create POST /api/categories.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	category, err := h.categoryUC.Create(GetCompanyID(c), req.Name, req.Description, req.Slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(category))
}

// GetByID GET /api/categories/:id.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	category, err := h.categoryUC.GetByID(id, GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCategoryResponse(category))
}

// List GET /api/categories.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()
	categories, err := h.categoryUC.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, toCategoryResponse(category))
	}
	return c.JSON(resp)
}

// Update PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "body inválido"})
	}
	category, err := h.categoryUC.Update(id, GetCompanyID(c), req.Name, req.Description, req.Slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCategoryResponse(category))
}

// Delete DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.categoryUC.Delete(id, GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toCategoryResponse(category *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Slug:        category.Slug,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
