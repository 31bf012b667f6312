package dashboard

import "context"

// ReportGenerator define el puerto de salida para renderizar el reporte de ventas.
type ReportGenerator interface {
	GenerateSalesReport(ctx context.Context, summary *Summary) ([]byte, error)
}
