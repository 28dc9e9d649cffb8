package presenters

import (
	"errors"
	"testing"

	"cooking-half/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, fiber.StatusOK},
		{"user not found", domain.ErrUserNotFound, fiber.StatusNotFound},
		{"recipe not found", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"favorite not found", domain.ErrFavoriteNotFound, fiber.StatusNotFound},
		{"gorm record not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"email registered", domain.ErrEmailRegistered, fiber.StatusConflict},
		{"username taken", domain.ErrUsernameTaken, fiber.StatusConflict},
		{"already favorited", domain.ErrAlreadyFavorited, fiber.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"not allowed", domain.ErrUserNotAllowed, fiber.StatusForbidden},
		{"invalid rating", domain.ErrInvalidRating, fiber.StatusBadRequest},
		{"empty comment", domain.ErrEmptyComment, fiber.StatusBadRequest},
		{"upload rejected", domain.NewUploadError("file must be an image"), fiber.StatusBadRequest},
		{"unique violation", &pgconn.PgError{Code: "23505"}, fiber.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "23503"}, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
