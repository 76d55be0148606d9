package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
)

// CatalogService productos y lotes.
type CatalogService interface {
	CreateProduct(ctx context.Context, organizationID string, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, organizationID string) ([]dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, organizationID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, organizationID, productID string) error
	ListLots(ctx context.Context, organizationID string) ([]dto.LotResponse, error)
}

// MovementService registro y consulta de movimientos.
type MovementService interface {
	RegisterMovement(ctx context.Context, organizationID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error)
	RecentMovements(ctx context.Context, organizationID string, limit int, locale string) ([]dto.MovementResponse, error)
}

// InventoryHandler productos, lotes y movimientos.
type InventoryHandler struct {
	catalog   CatalogService
	movements MovementService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(catalog CatalogService, movements MovementService) *InventoryHandler {
	return &InventoryHandler{catalog: catalog, movements: movements}
}

// CreateProduct godoc
// @Summary      Crear producto (admin)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "nombre"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.catalog.CreateProduct(c.Context(), orgID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts godoc
// @Summary      Productos de la organización
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.catalog.ListProducts(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProduct godoc
// @Summary      Renombrar producto (admin)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "nombre"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.catalog.UpdateProduct(c.Context(), orgID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto (admin)
// @Description  Sólo se eliminan productos sin lotes ni movimientos.
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	if err := h.catalog.DeleteProduct(c.Context(), orgID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLots godoc
// @Summary      Lotes de la organización
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LotResponse
// @Router       /api/lots [get]
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.catalog.ListLots(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida
// @Description  Una entrada exige fecha_vencimiento y crea el lote correspondiente.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, tipo, cantidad, fecha_vencimiento"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.movements.RegisterMovement(c.Context(), orgID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecentMovements godoc
// @Summary      Últimos movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máx. movimientos (default y tope 50)"
// @Param        Accept-Language  header  string  false  "es | en"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) RecentMovements(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.movements.RecentMovements(c.Context(), orgID, c.QueryInt("limit", 0), requestLocale(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
