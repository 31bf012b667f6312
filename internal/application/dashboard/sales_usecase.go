// Package dashboard contiene los casos de uso de las tarjetas del dashboard
// (ventas del período y saldo inicial) y su exportación a PDF.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/domain/reporting"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
)

// SalesUseCase calcula las cifras del dashboard para una selección de período y alcance.
//
// Fuente de datos: SalesRepository (agregaciones read-only). El filtro se arma
// en reporting; este caso de uso solo fija "hoy" en la zona horaria del negocio.
type SalesUseCase struct {
	repo repository.SalesRepository
	loc  *time.Location
	now  func() time.Time
}

// NewSalesUseCase construye el caso de uso. loc define qué día es "hoy".
func NewSalesUseCase(repo repository.SalesRepository, loc *time.Location) *SalesUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesUseCase{repo: repo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *SalesUseCase) WithClock(now func() time.Time) *SalesUseCase {
	uc.now = now
	return uc
}

func (uc *SalesUseCase) today() time.Time {
	return uc.now().In(uc.loc)
}

// SalesToday suma GrossSales en efectivo del período y alcance pedidos.
func (uc *SalesUseCase) SalesToday(ctx context.Context, q dto.SalesQuery) (*dto.SalesTodayResponse, error) {
	total, err := uc.grossSales(ctx, toRequest(q), uc.today())
	if err != nil {
		return nil, err
	}
	return &dto.SalesTodayResponse{TotalGrossSalesToday: total.InexactFloat64()}, nil
}

// BeginningBalance suma los saldos pendientes anteriores al período pedido.
func (uc *SalesUseCase) BeginningBalance(ctx context.Context, q dto.SalesQuery) (*dto.BeginningBalanceResponse, error) {
	total, err := uc.balance(ctx, toRequest(q), uc.today())
	if err != nil {
		return nil, err
	}
	return &dto.BeginningBalanceResponse{PreviousBalance: total.InexactFloat64()}, nil
}

// Summary cifras del dashboard en decimal exacto, para el reporte PDF.
type Summary struct {
	Period           reporting.Period
	Scope            reporting.AccessScope
	GrossSales       decimal.Decimal
	BeginningBalance decimal.Decimal
	GeneratedAt      time.Time
}

// Summary calcula ventas y saldo inicial en paralelo.
func (uc *SalesUseCase) Summary(ctx context.Context, q dto.SalesQuery) (*Summary, error) {
	req := toRequest(q)
	today := uc.today()

	type result struct {
		total decimal.Decimal
		err   error
	}
	salesCh := make(chan result, 1)
	balanceCh := make(chan result, 1)

	go func() {
		total, err := uc.grossSales(ctx, req, today)
		salesCh <- result{total, err}
	}()
	go func() {
		total, err := uc.balance(ctx, req, today)
		balanceCh <- result{total, err}
	}()

	sales := <-salesCh
	balance := <-balanceCh
	if sales.err != nil {
		return nil, sales.err
	}
	if balance.err != nil {
		return nil, balance.err
	}

	return &Summary{
		Period:           reporting.ResolvePeriod(req.Month, req.Year, today),
		Scope:            req.Scope(),
		GrossSales:       sales.total.Round(2),
		BeginningBalance: balance.total.Round(2),
		GeneratedAt:      today,
	}, nil
}

func (uc *SalesUseCase) grossSales(ctx context.Context, req reporting.Request, today time.Time) (decimal.Decimal, error) {
	total, err := uc.repo.SumGrossSales(ctx, reporting.BuildSalesFilter(req, today))
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard: ventas del período: %w", err)
	}
	return total, nil
}

func (uc *SalesUseCase) balance(ctx context.Context, req reporting.Request, today time.Time) (decimal.Decimal, error) {
	total, err := uc.repo.SumBalanceAmount(ctx, reporting.BuildBalanceFilter(req, today))
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard: saldo inicial: %w", err)
	}
	return total, nil
}

func toRequest(q dto.SalesQuery) reporting.Request {
	return reporting.Request{Month: q.Month, Year: q.Year, Location: q.Location, Role: q.Role}
}
