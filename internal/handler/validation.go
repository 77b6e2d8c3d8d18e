package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

// RegisterValidators adds the custom binding tags used by the request models
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("activitymode", func(fl validator.FieldLevel) bool {
		return models.ActivityMode(fl.Field().String()).Valid()
	}); err != nil {
		return fmt.Errorf("failed to register activitymode: %w", err)
	}
	if err := v.RegisterValidation("placekind", func(fl validator.FieldLevel) bool {
		return models.PlaceKind(fl.Field().String()).Valid()
	}); err != nil {
		return fmt.Errorf("failed to register placekind: %w", err)
	}
	return nil
}
