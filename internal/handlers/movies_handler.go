package handlers

import (
	"strconv"

	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MoviesHandler struct {
	service services.MoviesService
	logger  *logrus.Logger
}

func NewMoviesHandler(service services.MoviesService, logger *logrus.Logger) *MoviesHandler {
	return &MoviesHandler{
		service: service,
		logger:  logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description Paginated catalog with genre names and credited people grouped by role
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search query string false "Search by title"
// @Param genre query string false "Filter by genre name"
// @Success 200 {object} utils.StandardResponse{data=[]services.Movie}
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MoviesHandler) ListMovies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	movies, total, err := h.service.ListMovies(c.Context(), page, c.Query("search", ""), c.Query("genre", ""))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list movies")
	}

	meta := utils.CreatePaginationMeta(page, h.service.PageSize(), total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovie godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path string true "Film work ID"
// @Success 200 {object} utils.StandardResponse{data=services.Movie}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id} [get]
func (h *MoviesHandler) GetMovie(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovie(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}
