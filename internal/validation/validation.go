// Package validation contém as regras de validação do payload de desenvolvedores.
//
// As regras ficam nas tags `validate` de domain.DeveloperInput e são avaliadas
// pelo go-playground/validator. Falhas viram *apperror.ValidationError com a
// lista de campos inválidos.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"godevs/internal/domain"
	apperror "godevs/internal/errors"
)

// MinSpecialtiesOnCreate é a quantidade mínima de especialidades exigida na criação.
const MinSpecialtiesOnCreate = 2

// DeveloperValidator valida payloads de criação e atualização.
type DeveloperValidator struct {
	validate *validator.Validate
}

// NewDeveloperValidator cria o validador com as regras customizadas registradas.
func NewDeveloperValidator() *DeveloperValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usa o nome do campo no JSON nas mensagens de erro.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// posint: o texto precisa representar um inteiro positivo.
	_ = v.RegisterValidation("posint", isPositiveInteger)

	return &DeveloperValidator{validate: v}
}

// ValidateCreate aplica as regras de criação, incluindo o mínimo de especialidades.
func (dv *DeveloperValidator) ValidateCreate(in domain.DeveloperInput) error {
	fields := dv.collect(in)
	if !hasField(fields, "specialties") && len(in.Specialties) < MinSpecialtiesOnCreate {
		fields = append(fields, apperror.FieldError{
			Field:   "specialties",
			Message: fmt.Sprintf("deve conter pelo menos %d itens", MinSpecialtiesOnCreate),
		})
	}
	return toError(fields)
}

// ValidateUpdate aplica as regras de atualização.
// O mínimo de especialidades não é reaplicado aqui.
func (dv *DeveloperValidator) ValidateUpdate(in domain.DeveloperInput) error {
	return toError(dv.collect(in))
}

func (dv *DeveloperValidator) collect(in domain.DeveloperInput) []apperror.FieldError {
	err := dv.validate.Struct(in)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "payload", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return fields
}

func hasField(fields []apperror.FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func toError(fields []apperror.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return apperror.NewFieldValidationError("Dados do desenvolvedor inválidos", fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("deve conter pelo menos %s itens", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "posint":
		return "deve ser um número inteiro positivo"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("falhou na regra %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("falhou na regra %s", fe.Tag())
	}
}

func isPositiveInteger(fl validator.FieldLevel) bool {
	value, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	if err != nil {
		return false
	}
	return value > 0
}
