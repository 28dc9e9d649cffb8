package validation

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestMessagesNil(t *testing.T) {
	assert.Nil(t, Messages(nil))
}

func TestMessagesPlainError(t *testing.T) {
	msgs := Messages(errors.New("boom"))
	assert.Equal(t, []string{"boom"}, msgs)
}

func TestMessagesFieldConstraints(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Servings int    `json:"servings" validate:"omitempty,gt=0"`
	}

	err := newValidator().Struct(payload{
		Username: "ab",
		Email:    "not-an-email",
		Servings: -1,
	})
	require.Error(t, err)

	msgs := Messages(err)
	assert.Contains(t, msgs, "username must be at least 3 characters")
	assert.Contains(t, msgs, "email must be a valid email address")
	assert.Contains(t, msgs, "servings must be greater than 0")
}

func TestMessagesRequired(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required"`
	}

	err := newValidator().Struct(payload{})
	require.Error(t, err)

	assert.Equal(t, []string{"title is required"}, Messages(err))
}

func TestMessagesSliceIndexesAreOneBased(t *testing.T) {
	type entry struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}
	type payload struct {
		Ingredients []entry `json:"ingredients" validate:"dive"`
	}

	err := newValidator().Struct(payload{
		Ingredients: []entry{{Quantity: 1}, {Quantity: 0}},
	})
	require.Error(t, err)

	msgs := Messages(err)
	require.Len(t, msgs, 1)
	assert.True(t, strings.HasPrefix(msgs[0], "ingredients[2]."), msgs[0])
}
