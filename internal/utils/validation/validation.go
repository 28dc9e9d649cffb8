// Package validation renders validator.ValidationErrors into the
// accumulated, human-readable error lists returned by write endpoints.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

// Messages flattens err into one message per failed field. Slice elements
// are addressed by 1-based position. Non-validator errors produce a single
// message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s %s", fieldPath(fe), constraint(fe)))
	}
	return messages
}

// fieldPath strips the root struct name from the namespace and rewrites
// 0-based slice indexes to 1-based ones.
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return indexRegex.ReplaceAllStringFunc(path, func(m string) string {
		n, _ := strconv.Atoi(m[1 : len(m)-1])
		return "[" + strconv.Itoa(n+1) + "]"
	})
}

func constraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "username":
		return "may only contain letters, digits and underscores"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
