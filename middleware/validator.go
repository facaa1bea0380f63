package middleware

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// RegisterValidators adds the custom binding tags used by request models.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return models.IsValidOrderStatus(fl.Field().String())
	})
}
