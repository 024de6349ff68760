package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de DTOs (tags `validate`).
var validate = validator.New()

// validationDetail arma un mensaje legible a partir de los errores de
// validación, campo por campo.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "datos inválidos"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}
