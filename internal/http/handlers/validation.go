package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError is one entry of a 422 response detail.
type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// bindingDetail converts a gin binding failure into field-level detail for a
// 422 response. Non-validator errors (malformed JSON and the like) come back
// as a single string.
func bindingDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{
			Field: strings.ToLower(fe.Field()),
			Error: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "invalid value"
}

func validationError(c *gin.Context, detail any) {
	c.JSON(422, gin.H{"detail": detail})
}
