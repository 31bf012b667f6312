// Package validate envuelve go-playground/validator para reportar los campos
// con el mismo nombre que usan los clientes en el JSON.
package validate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return val
}

// FieldsError lista los campos que no pasaron la validación.
type FieldsError struct {
	Fields map[string]string
}

func (e *FieldsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Struct valida s según sus tags `validate`. Devuelve *FieldsError si algún campo falla.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validación: %w", err)
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = message(fe)
	}
	return &FieldsError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "max":
		return fmt.Sprintf("debe tener como máximo %s", fe.Param())
	case "mongodb":
		return "debe ser un ObjectID válido"
	}
	return "es inválido"
}
