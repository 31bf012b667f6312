// Package currency formatea montos en pesos filipinos con separador de miles.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-PH"))

// FormatPHP devuelve el monto con el código ISO, ej: "PHP 1,234,567.50".
// Las fuentes estándar del PDF no tienen el glifo ₱.
func FormatPHP(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + "PHP " + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
