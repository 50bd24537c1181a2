package handlers

import (
	"errors"
	"strconv"

	"movies-admin/internal/apperror"
	"movies-admin/internal/repository"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func parseID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	return id, err == nil
}

func listParams(c *fiber.Ctx, limit int) repository.ListParams {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	return repository.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search", ""),
	}
}

// serviceError writes the response for an error returned by a service call.
func serviceError(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	status := apperror.HTTPStatus(err)

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": status,
	})
	if status >= fiber.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && (appErr.Field != "" || appErr.Constraint != "") {
		return utils.ErrorWithDataResponse(c, status, apperror.Message(err), fiber.Map{
			"entity":     appErr.Entity,
			"field":      appErr.Field,
			"constraint": appErr.Constraint,
		})
	}
	return utils.ErrorResponse(c, status, apperror.Message(err))
}
