package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
// Error lleva el texto crudo del error de persistencia (el cliente actual lo muestra en consola).
type ErrorResponse struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse cuerpo de las mutaciones exitosas.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FlexString acepta un string o un número JSON y lo guarda como texto.
// Los formularios del dashboard envían cantidades en cualquiera de las dos formas.
type FlexString string

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("se esperaba texto o número: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// String devuelve el valor como texto.
func (f FlexString) String() string { return string(f) }
