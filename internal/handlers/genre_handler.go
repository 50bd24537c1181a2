package handlers

import (
	"movies-admin/internal/repository"
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service  services.CatalogService
	pageSize int
	logger   *logrus.Logger
}

func NewGenreHandler(service services.CatalogService, pageSize int, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListGenres godoc
// @Summary List genres
// @Description Paginated genre list ordered by name descending
// @Tags admin-genres
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search query string false "Search by name"
// @Param name query string false "Filter by exact name"
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre}
// @Failure 500 {object} utils.StandardResponse
// @Router /admin/genres [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	filter := repository.GenreFilter{
		ListParams: listParams(c, h.pageSize),
		Name:       c.Query("name", ""),
	}

	genres, total, err := h.service.ListGenres(c.Context(), filter)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list genres")
	}

	meta := utils.CreatePaginationMeta(filter.Page, filter.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres, meta)
}

// GetGenre godoc
// @Summary Get genre by ID
// @Tags admin-genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse{data=models.Genre}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/genres/{id} [get]
func (h *GenreHandler) GetGenre(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.GetGenre(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags admin-genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} utils.StandardResponse{data=models.Genre}
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := req.toModel()
	if err := h.service.CreateGenre(c.Context(), genre); err != nil {
		return serviceError(c, h.logger, err, "Failed to create genre")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

// UpdateGenre godoc
// @Summary Update a genre
// @Tags admin-genres
// @Accept json
// @Produce json
// @Param id path string true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} utils.StandardResponse{data=models.Genre}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := req.toModel()
	if err := h.service.UpdateGenre(c.Context(), id, genre); err != nil {
		return serviceError(c, h.logger, err, "Failed to update genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Deletes the genre and untags every film work carrying it
// @Tags admin-genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.Context(), id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}
