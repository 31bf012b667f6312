package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModeCash es el único modo de pago que cuenta como venta en los reportes.
const PaymentModeCash = "Cash"

// ContainerOrder venta (orden) de cajas de un contenedor a un comprador.
// Status es texto libre, sin transiciones validadas.
type ContainerOrder struct {
	ID            string
	BuyersName    string
	DateOrder     string // fecha ISO YYYY-MM-DD
	PlaceSales    string
	ContainerNo   string
	Commodity     string
	Size          string
	BoxSales      string
	Price         decimal.Decimal
	GrossSales    decimal.Decimal
	PayAmount     decimal.Decimal
	Status        string
	BalanceAmount decimal.Decimal
	Location      string
	PaymentMode   string
	UpdatedAt     time.Time
}
