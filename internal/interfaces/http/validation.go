package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/payetonkawa/api-produit/internal/application/dto"
)

var validate = newValidator()

// newValidator configure le validateur pour rapporter les noms de champs
// tels qu'ils apparaissent dans le JSON (tags json, pas les noms Go).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct valide un payload et renvoie les erreurs par champ
// (vide si le payload est valide).
func validateStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var details []dto.FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.FieldError{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	} else {
		details = append(details, dto.FieldError{Field: "body", Message: "Invalid value"})
	}
	return details
}

// validationMessage message lisible pour une erreur de validation.
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	default:
		return "Invalid value"
	}
}
