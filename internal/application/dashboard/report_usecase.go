package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
)

// ReportUseCase exporta las cifras del dashboard como PDF.
type ReportUseCase struct {
	sales     *SalesUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales *SalesUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{sales: sales, generator: generator}
}

// SalesReportPDF devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, q dto.SalesQuery) (pdfBytes []byte, filename string, err error) {
	summary, err := uc.sales.Summary(ctx, q)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateSalesReport(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard: generar PDF: %w", err)
	}
	return pdfBytes, reportFilename(summary), nil
}

// reportFilename ej: "sales-report_cebu_2024-06-15.pdf".
func reportFilename(s *Summary) string {
	scope := s.Scope.Location
	if _, ok := s.Scope.LocationClause(); !ok {
		scope = "all-locations"
	}
	scope = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(scope), " ", "-"))
	return fmt.Sprintf("sales-report_%s_%s.pdf", scope, s.GeneratedAt.Format("2006-01-02"))
}
