// Package reporting construye los filtros de los reportes del dashboard a
// partir de la selección de período (mes/año) y del alcance de acceso
// (rol/sucursal). Es lógica pura: no conoce el almacén de datos.
package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All es el valor que envía el dashboard cuando no se elige mes, año o sucursal.
const All = "All"

// DateLayout formato ISO de las fechas de orden (DateOrder) y de los límites de rango.
const DateLayout = "2006-01-02"

// sentinelYear año fijo usado cuando solo se elige el mes.
// Con datos reales de varios años no encuentra "todos los junios": solo junio de 2000.
const sentinelYear = 2000

// PeriodKind variante del período seleccionado.
type PeriodKind int

const (
	PeriodToday     PeriodKind = iota // sin mes ni año: solo el día de hoy
	PeriodYear                        // solo año
	PeriodMonth                       // solo mes (año centinela)
	PeriodYearMonth                   // mes y año
	PeriodInvalid                     // mes o año mal formados: no coincide con nada
)

func (k PeriodKind) String() string {
	switch k {
	case PeriodToday:
		return "today"
	case PeriodYear:
		return "year"
	case PeriodMonth:
		return "month"
	case PeriodYearMonth:
		return "year_month"
	default:
		return "invalid"
	}
}

// Period período resuelto una sola vez a partir de los parámetros crudos.
type Period struct {
	Kind  PeriodKind
	Year  int
	Month time.Month
	Today time.Time // solo PeriodToday, truncado al día
}

// ResolvePeriod interpreta month/year ("All" o vacío = no seleccionado).
// today se usa únicamente cuando no hay selección.
func ResolvePeriod(month, year string, today time.Time) Period {
	month = normalizeSelection(month)
	year = normalizeSelection(year)

	switch {
	case month != All && year != All:
		m, okM := parseMonth(month)
		y, okY := parseYear(year)
		if !okM || !okY {
			return Period{Kind: PeriodInvalid}
		}
		return Period{Kind: PeriodYearMonth, Year: y, Month: m}
	case year != All:
		y, ok := parseYear(year)
		if !ok {
			return Period{Kind: PeriodInvalid}
		}
		return Period{Kind: PeriodYear, Year: y}
	case month != All:
		m, ok := parseMonth(month)
		if !ok {
			return Period{Kind: PeriodInvalid}
		}
		return Period{Kind: PeriodMonth, Year: sentinelYear, Month: m}
	default:
		d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		return Period{Kind: PeriodToday, Today: d}
	}
}

// Bounds devuelve el rango semiabierto [start, end) del período.
// ok es false para PeriodInvalid.
func (p Period) Bounds() (start, end time.Time, ok bool) {
	switch p.Kind {
	case PeriodToday:
		return p.Today, p.Today.AddDate(0, 0, 1), true
	case PeriodYear:
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), true
	case PeriodMonth, PeriodYearMonth:
		start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Label etiqueta legible del período, ej: "June 2024".
func (p Period) Label() string {
	switch p.Kind {
	case PeriodToday:
		return "Today, " + p.Today.Format("January 2, 2006")
	case PeriodYear:
		return strconv.Itoa(p.Year)
	case PeriodMonth:
		return p.Month.String()
	case PeriodYearMonth:
		return fmt.Sprintf("%s %d", p.Month, p.Year)
	default:
		return "Invalid period"
	}
}

func normalizeSelection(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	return s
}

func parseMonth(s string) (time.Month, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return time.Month(n), true
}

func parseYear(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9998 {
		return 0, false
	}
	return n, true
}
