package validators

import (
	"net/http"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the notification rules registered
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterStructValidation(notificationStructLevel, models.Notification{})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Struct validates without wrapping the error in an HTTP error
func (cv *CustomValidator) Struct(i interface{}) error {
	return cv.validator.Struct(i)
}

// a target kind only makes sense next to a target
func notificationStructLevel(sl validator.StructLevel) {
	n := sl.Current().Interface().(models.Notification)
	if n.TargetKind != nil && n.Target == nil {
		sl.ReportError(n.TargetKind, "target_kind", "TargetKind", "excluded_without_target", "")
	}
}
