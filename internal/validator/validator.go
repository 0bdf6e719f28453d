package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-statistics/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("granularity", validateGranularity)

	return validator
}

func validateGranularity(fl validator.FieldLevel) bool {
	return domain.Granularity(fl.Field().String()).Valid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "granularity":
		return fmt.Sprintf("must be one of: %s", strings.Join(granularityNames(), ", "))
	default:
		return "is invalid"
	}
}

func granularityNames() []string {
	names := make([]string, len(domain.Granularities))
	for i, g := range domain.Granularities {
		names[i] = string(g)
	}

	return names
}
