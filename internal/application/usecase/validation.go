package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gestion-patrimonial/internal/domain"
)

// isoDate formato de las fechas guardadas como TEXT.
const isoDate = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los errores nombran la columna (tag json), no el campo Go
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput aplica las reglas `validate` de un DTO y traduce el resultado a
// domain.ErrInvalidInput con los campos que fallaron.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "email":
		return fmt.Sprintf("%s no es un email válido", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s debe tener formato AAAA-MM-DD", fe.Field())
	case "max":
		return fmt.Sprintf("%s supera el máximo de %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag())
	}
}

// checkDate acepta "" (sin fecha) o YYYY-MM-DD.
func checkDate(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(isoDate, s); err != nil {
		return fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	return nil
}

// setRequired asigna un texto obligatorio en una actualización parcial.
func setRequired(dst *string, src *string, field string) error {
	if src == nil {
		return nil
	}
	if strings.TrimSpace(*src) == "" {
		return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
	}
	*dst = *src
	return nil
}

func setText(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setRef asigna una referencia opcional: nil no cambia nada, 0 la quita.
func setRef(dst **int64, src *int64) {
	if src == nil {
		return
	}
	if *src == 0 {
		*dst = nil
		return
	}
	id := *src
	*dst = &id
}

// requireText rechaza textos obligatorios que solo contienen espacios.
func requireText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
	}
	return nil
}

func notFound(what string, id int64) error {
	return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
}
