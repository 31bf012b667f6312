package reporting

import (
	"time"

	"github.com/jhoicas/container-sales-api/internal/domain/entity"
)

// Request selección cruda que llega del dashboard.
type Request struct {
	Month    string
	Year     string
	Location string
	Role     string
}

// Scope alcance de acceso de la selección.
func (r Request) Scope() AccessScope {
	return AccessScope{Role: r.Role, Location: r.Location}
}

// DateClause condición sobre DateOrder. Como mucho uno de Equals o (From, Before)
// está presente; MatchNone descarta todos los registros.
type DateClause struct {
	Equals    string // coincidencia exacta (hoy)
	From      string // >= , inclusivo
	Before    string // < , exclusivo
	MatchNone bool
}

// Filter predicado independiente del almacén. Los campos vacíos no generan condición.
type Filter struct {
	PaymentMode string
	DateOrder   DateClause
	Location    string
}

// HasLocation indica si el filtro restringe por sucursal.
func (f Filter) HasLocation() bool {
	return f.Location != ""
}

// BuildSalesFilter arma el predicado de ventas en efectivo del período y alcance pedidos.
func BuildSalesFilter(req Request, today time.Time) Filter {
	period := ResolvePeriod(req.Month, req.Year, today)
	f := Filter{PaymentMode: entity.PaymentModeCash}

	switch period.Kind {
	case PeriodToday:
		f.DateOrder = DateClause{Equals: period.Today.Format(DateLayout)}
	case PeriodInvalid:
		f.DateOrder = DateClause{MatchNone: true}
	default:
		start, end, _ := period.Bounds()
		f.DateOrder = DateClause{From: start.Format(DateLayout), Before: end.Format(DateLayout)}
	}

	if loc, ok := req.Scope().LocationClause(); ok {
		f.Location = loc
	}
	return f
}

// BuildBalanceFilter arma el predicado del saldo inicial: órdenes de cualquier
// modo de pago anteriores al inicio del período, con el mismo alcance por sucursal.
func BuildBalanceFilter(req Request, today time.Time) Filter {
	period := ResolvePeriod(req.Month, req.Year, today)
	var f Filter

	start, _, ok := period.Bounds()
	if ok {
		f.DateOrder = DateClause{Before: start.Format(DateLayout)}
	} else {
		f.DateOrder = DateClause{MatchNone: true}
	}

	if loc, ok := req.Scope().LocationClause(); ok {
		f.Location = loc
	}
	return f
}
