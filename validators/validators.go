// Package validators wires go-playground/validator into Echo and holds the
// struct-level rules request tags cannot express.
package validators

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/models"
)

// Validator adapts a validator.Validate to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the application validator with all custom rules
// registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(createLinkRules, models.CreateLinkRequest{})
	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures become 400 responses.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// createLinkRules enforces the creation invariant: at least one of
// title/description, and at least one of redirect link/popunder ad.
func createLinkRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.CreateLinkRequest)

	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
		sl.ReportError(req.Title, "title", "Title", "title_or_description", "")
	}
	if strings.TrimSpace(req.RedirectLink) == "" && strings.TrimSpace(req.PopunderAd) == "" {
		sl.ReportError(req.RedirectLink, "redirect_link", "RedirectLink", "redirect_or_popunder", "")
	}
}
