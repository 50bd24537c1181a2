package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope every API response is wrapped in
type StandardResponse struct {
	Status  string      `json:"status" example:"success"`
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaginationMeta describes one page of a list response
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func statusFor(code int) string {
	switch {
	case code >= fiber.StatusInternalServerError:
		return "fail"
	case code >= fiber.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

func respond(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  statusFor(code),
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return respond(c, code, message, data, nil)
}

// SuccessWithMetaResponse sends a list page together with its pagination meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return respond(c, code, message, data, meta)
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return respond(c, code, message, nil, nil)
}

// ErrorWithDataResponse sends an error response with details about the failed field or constraint
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return respond(c, code, message, data, nil)
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
