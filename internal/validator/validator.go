// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Tokyo Stock Exchange local codes are four digits.
var stockCodeRegex = regexp.MustCompile(`^[0-9]{4}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("stock_code", validateStockCode)
		_ = v.RegisterValidation("sort_column", validateSortColumn)
		_ = v.RegisterValidation("sort_direction", validateSortDirection)
	}
}

func validateStockCode(fl validator.FieldLevel) bool {
	return stockCodeRegex.MatchString(fl.Field().String())
}

func validateSortColumn(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "code", "name", "ratio", "quantity", "value", "pl":
		return true
	}
	return false
}

func validateSortDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}
