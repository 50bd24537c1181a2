package handlers

import (
	"movies-admin/internal/models"
	"movies-admin/internal/repository"
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmworkHandler struct {
	service  services.CatalogService
	pageSize int
	logger   *logrus.Logger
}

func NewFilmworkHandler(service services.CatalogService, pageSize int, logger *logrus.Logger) *FilmworkHandler {
	return &FilmworkHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListFilmworks godoc
// @Summary List film works
// @Description Paginated film work list ordered by creation date descending, each row labelled with its genres
// @Tags admin-filmworks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search query string false "Search by title, description, id, genre, type or person name"
// @Param type query string false "Filter by type (movie, tv_show)"
// @Param creation_date query string false "Filter by creation date"
// @Param genre query string false "Filter by genre name"
// @Success 200 {object} utils.StandardResponse{data=[]services.FilmworkListItem}
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/filmworks [get]
func (h *FilmworkHandler) ListFilmworks(c *fiber.Ctx) error {
	typ := c.Query("type", "")
	if typ != "" && !models.FilmworkType(typ).Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid type filter")
	}

	filter := repository.FilmworkFilter{
		ListParams:   listParams(c, h.pageSize),
		Type:         typ,
		CreationDate: c.Query("creation_date", ""),
		Genre:        c.Query("genre", ""),
	}

	filmworks, total, err := h.service.ListFilmworks(c.Context(), filter)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list film works")
	}

	meta := utils.CreatePaginationMeta(filter.Page, filter.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Film works retrieved successfully", filmworks, meta)
}

// GetFilmwork godoc
// @Summary Get film work by ID
// @Description Film work with its genre tags and person credits
// @Tags admin-filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Success 200 {object} utils.StandardResponse{data=services.FilmworkDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id} [get]
func (h *FilmworkHandler) GetFilmwork(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	filmwork, err := h.service.GetFilmwork(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get film work")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film work retrieved successfully", filmwork)
}

// CreateFilmwork godoc
// @Summary Create a film work
// @Tags admin-filmworks
// @Accept json
// @Produce json
// @Param filmwork body FilmworkRequest true "Film work"
// @Success 201 {object} utils.StandardResponse{data=models.Filmwork}
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/filmworks [post]
func (h *FilmworkHandler) CreateFilmwork(c *fiber.Ctx) error {
	var req FilmworkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	filmwork := req.toModel()
	if err := h.service.CreateFilmwork(c.Context(), filmwork); err != nil {
		return serviceError(c, h.logger, err, "Failed to create film work")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Film work created successfully", filmwork)
}

// UpdateFilmwork godoc
// @Summary Update a film work
// @Description Replaces every editable field. A changed file_path removes the previous media object.
// @Tags admin-filmworks
// @Accept json
// @Produce json
// @Param id path string true "Film work ID"
// @Param filmwork body FilmworkRequest true "Film work"
// @Success 200 {object} utils.StandardResponse{data=models.Filmwork}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id} [put]
func (h *FilmworkHandler) UpdateFilmwork(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	var req FilmworkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	filmwork := req.toModel()
	if err := h.service.UpdateFilmwork(c.Context(), id, filmwork); err != nil {
		return serviceError(c, h.logger, err, "Failed to update film work")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film work updated successfully", filmwork)
}

// PatchFilmwork godoc
// @Summary Edit film work list fields
// @Description Updates type, creation_date and rating without touching other fields
// @Tags admin-filmworks
// @Accept json
// @Produce json
// @Param id path string true "Film work ID"
// @Param patch body services.FilmworkPatch true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Filmwork}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id} [patch]
func (h *FilmworkHandler) PatchFilmwork(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	var patch services.FilmworkPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	filmwork, err := h.service.PatchFilmwork(c.Context(), id, patch)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to patch film work")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film work updated successfully", filmwork)
}

// DeleteFilmwork godoc
// @Summary Delete a film work
// @Description Deletes the film work with its genre tags, person credits and media file
// @Tags admin-filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id} [delete]
func (h *FilmworkHandler) DeleteFilmwork(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	if err := h.service.DeleteFilmwork(c.Context(), id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete film work")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film work deleted successfully", nil)
}

// AddGenre godoc
// @Summary Tag a film work with a genre
// @Tags admin-filmworks
// @Accept json
// @Produce json
// @Param id path string true "Film work ID"
// @Param link body GenreLinkRequest true "Genre"
// @Success 201 {object} utils.StandardResponse{data=models.GenreFilmwork}
// @Failure 409 {object} utils.StandardResponse "Already tagged"
// @Failure 422 {object} utils.StandardResponse "Unknown film work or genre"
// @Router /admin/filmworks/{id}/genres [post]
func (h *FilmworkHandler) AddGenre(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	var req GenreLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	link, err := h.service.AddGenre(c.Context(), id, req.GenreID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to tag film work")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre added successfully", link)
}

// RemoveGenre godoc
// @Summary Remove a genre from a film work
// @Tags admin-filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Param genreId path string true "Genre ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id}/genres/{genreId} [delete]
func (h *FilmworkHandler) RemoveGenre(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}
	genreID, ok := parseID(c, "genreId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.RemoveGenre(c.Context(), id, genreID); err != nil {
		return serviceError(c, h.logger, err, "Failed to remove genre")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre removed successfully", nil)
}

// AddPerson godoc
// @Summary Credit a person on a film work
// @Tags admin-filmworks
// @Accept json
// @Produce json
// @Param id path string true "Film work ID"
// @Param credit body PersonCreditRequest true "Person and role"
// @Success 201 {object} utils.StandardResponse{data=models.PersonFilmwork}
// @Failure 400 {object} utils.StandardResponse "Invalid role"
// @Failure 409 {object} utils.StandardResponse "Already credited in this role"
// @Failure 422 {object} utils.StandardResponse "Unknown film work or person"
// @Router /admin/filmworks/{id}/persons [post]
func (h *FilmworkHandler) AddPerson(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}

	var req PersonCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	credit, err := h.service.AddPerson(c.Context(), id, req.PersonID, req.Role)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to credit person")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Person added successfully", credit)
}

// RemovePerson godoc
// @Summary Remove a person credit from a film work
// @Tags admin-filmworks
// @Produce json
// @Param id path string true "Film work ID"
// @Param assocId path string true "Person credit ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/filmworks/{id}/persons/{assocId} [delete]
func (h *FilmworkHandler) RemovePerson(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film work ID")
	}
	assocID, ok := parseID(c, "assocId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credit ID")
	}

	if err := h.service.RemovePerson(c.Context(), id, assocID); err != nil {
		return serviceError(c, h.logger, err, "Failed to remove person")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Person removed successfully", nil)
}
