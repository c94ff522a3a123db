package validation

import (
	"fmt"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
}

// validatePriority accepts every enum value, including low which the parser never emits
func validatePriority(fl validator.FieldLevel) bool {
	switch model.Priority(fl.Field().String()) {
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		return true
	default:
		return false
	}
}

// ValidateSnapshot checks a snapshot read back from the artifact
func ValidateSnapshot(s model.Snapshot) error {
	if err := Validate.Struct(s); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return nil
}
