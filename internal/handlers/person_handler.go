package handlers

import (
	"movies-admin/internal/models"
	"movies-admin/internal/repository"
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PersonHandler struct {
	service  services.CatalogService
	pageSize int
	logger   *logrus.Logger
}

func NewPersonHandler(service services.CatalogService, pageSize int, logger *logrus.Logger) *PersonHandler {
	return &PersonHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListPersons godoc
// @Summary List persons
// @Description Paginated person list ordered by full name, each row labelled with the distinct roles the person holds
// @Tags admin-persons
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search query string false "Search by full name or role"
// @Param role query string false "Filter by role (actor, director, writer)"
// @Success 200 {object} utils.StandardResponse{data=[]services.PersonListItem}
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/persons [get]
func (h *PersonHandler) ListPersons(c *fiber.Ctx) error {
	role := c.Query("role", "")
	if role != "" && !models.Role(role).Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role filter")
	}

	filter := repository.PersonFilter{
		ListParams: listParams(c, h.pageSize),
		Role:       role,
	}

	persons, total, err := h.service.ListPersons(c.Context(), filter)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list persons")
	}

	meta := utils.CreatePaginationMeta(filter.Page, filter.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Persons retrieved successfully", persons, meta)
}

// GetPerson godoc
// @Summary Get person by ID
// @Description Person with role label and film work credits
// @Tags admin-persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} utils.StandardResponse{data=services.PersonDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/persons/{id} [get]
func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	person, err := h.service.GetPerson(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get person")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Person retrieved successfully", person)
}

// CreatePerson godoc
// @Summary Create a person
// @Tags admin-persons
// @Accept json
// @Produce json
// @Param person body PersonRequest true "Person"
// @Success 201 {object} utils.StandardResponse{data=models.Person}
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/persons [post]
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	person := req.toModel()
	if err := h.service.CreatePerson(c.Context(), person); err != nil {
		return serviceError(c, h.logger, err, "Failed to create person")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Person created successfully", person)
}

// UpdatePerson godoc
// @Summary Update a person
// @Tags admin-persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param person body PersonRequest true "Person"
// @Success 200 {object} utils.StandardResponse{data=models.Person}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	person := req.toModel()
	if err := h.service.UpdatePerson(c.Context(), id, person); err != nil {
		return serviceError(c, h.logger, err, "Failed to update person")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Person updated successfully", person)
}

// DeletePerson godoc
// @Summary Delete a person
// @Description Deletes the person and all of their film work credits
// @Tags admin-persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	if err := h.service.DeletePerson(c.Context(), id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete person")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Person deleted successfully", nil)
}
