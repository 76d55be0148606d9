package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
)

// OrganizationService lectura y renombrado de la organización.
type OrganizationService interface {
	Get(ctx context.Context, id string) (*dto.OrganizationResponse, error)
	Rename(ctx context.Context, id string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error)
}

// OperatorService gestión de operarios.
type OperatorService interface {
	List(ctx context.Context, organizationID string) ([]dto.ProfileResponse, error)
	Create(ctx context.Context, organizationID string, in dto.CreateOperatorRequest) (*dto.ProfileResponse, error)
	Update(ctx context.Context, organizationID, id string, in dto.UpdateOperatorRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

// OrganizationHandler organización del usuario autenticado y sus operarios.
type OrganizationHandler struct {
	orgs      OrganizationService
	operators OperatorService
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(orgs OrganizationService, operators OperatorService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, operators: operators}
}

// Get godoc
// @Summary      Organización actual
// @Tags         organization
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organization [get]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.orgs.Get(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar organización (admin)
// @Tags         organization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateOrganizationRequest  true  "nombre"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/organization [put]
func (h *OrganizationHandler) Rename(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.orgs.Rename(c.Context(), orgID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListOperators godoc
// @Summary      Operarios de la organización (admin)
// @Tags         organization
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProfileResponse
// @Router       /api/operators [get]
func (h *OrganizationHandler) ListOperators(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	out, err := h.operators.List(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateOperator godoc
// @Summary      Alta de operario (admin)
// @Tags         organization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperatorRequest  true  "nombre, apellido, correo, password"
// @Success      201  {object}  dto.ProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/operators [post]
func (h *OrganizationHandler) CreateOperator(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.CreateOperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.operators.Create(c.Context(), orgID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateOperator godoc
// @Summary      Editar operario (admin)
// @Tags         organization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del operario"
// @Param        body  body  dto.UpdateOperatorRequest  true  "nombre, apellido, correo"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/operators/{id} [put]
func (h *OrganizationHandler) UpdateOperator(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	var in dto.UpdateOperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.operators.Update(c.Context(), orgID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteOperator godoc
// @Summary      Baja de operario (admin)
// @Tags         organization
// @Security     Bearer
// @Param        id  path  string  true  "ID del operario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operators/{id} [delete]
func (h *OrganizationHandler) DeleteOperator(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	if err := h.operators.Delete(c.Context(), orgID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
