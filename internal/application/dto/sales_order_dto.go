package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// EditSalesOrderRequest cuerpo de PUT /api/PedienteManual/EditPediente.
// Es una sobrescritura completa: los campos ausentes quedan vacíos o en cero.
// Los montos aceptan número o texto numérico; "" (campo de formulario vacío)
// equivale a cero y cualquier otro valor rechaza el cuerpo.
type EditSalesOrderRequest struct {
	ID            string          `json:"id" validate:"required,mongodb"`
	BuyersName    string          `json:"BuyersName"`
	DateOrder     string          `json:"DateOrder"`
	PlaceSales    string          `json:"PlaceSales"`
	ContainerNo   string          `json:"ContainerNo"`
	Commodity     string          `json:"Commodity"`
	Size          string          `json:"Size"`
	BoxSales      FlexString      `json:"BoxSales"`
	Price         decimal.Decimal `json:"Price"`
	GrossSales    decimal.Decimal `json:"GrossSales"`
	PayAmount     decimal.Decimal `json:"PayAmount"`
	Status        string          `json:"Status"`
	BalanceAmount decimal.Decimal `json:"BalanceAmount"`
	Location      string          `json:"Location"`
}

var amountFields = []string{"Price", "GrossSales", "PayAmount", "BalanceAmount"}

// UnmarshalJSON implementa json.Unmarshaler.
func (r *EditSalesOrderRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		if isAmountField(key) && isBlankString(raw) {
			delete(fields, key)
		}
	}
	normalized, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	type plain EditSalesOrderRequest
	var out plain
	if err := json.Unmarshal(normalized, &out); err != nil {
		return err
	}
	*r = EditSalesOrderRequest(out)
	return nil
}

func isAmountField(key string) bool {
	for _, f := range amountFields {
		if strings.EqualFold(key, f) {
			return true
		}
	}
	return false
}

func isBlankString(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}
