package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var assetSymbolPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

// RegisterValidations wires custom validation tags into gin's binding
// engine. Must be called once before any request is bound.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("assetsymbol", func(fl validator.FieldLevel) bool {
			return assetSymbolPattern.MatchString(fl.Field().String())
		})
	}
}
