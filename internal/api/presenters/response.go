package presenters

import (
	"cooking-half/domain"
	"cooking-half/internal/utils/validation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SuccessResponse merges the message into the payload map so response
// bodies keep their documented top-level shape.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, status int, message string) error {
	body := fiber.Map{}
	for k, v := range data {
		body[k] = v
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// DataResponse writes the payload as-is, for endpoints that return a bare
// object or list.
func DataResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		details := validation.Messages(err)
		if !(len(details) == 1 && details[0] == message) {
			body["details"] = details
		}
	}
	return c.Status(status).JSON(body)
}

// StatusFromError maps domain errors onto HTTP status codes. Unique
// violations reported by the database count as conflicts; anything
// unrecognized is a server error.
func StatusFromError(err error) int {
	if err == nil {
		return fiber.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrRestrictionNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailRegistered),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyFavorited):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyComment),
		errors.Is(err, domain.ErrCommentTooLong):
		return fiber.StatusBadRequest
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fiber.StatusBadRequest
	}

	var uploadErr *domain.UploadError
	if errors.As(err, &uploadErr) {
		return fiber.StatusBadRequest
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fiber.StatusConflict
	}

	return fiber.StatusInternalServerError
}
