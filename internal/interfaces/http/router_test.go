package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/container-sales-api/internal/application/container"
	"github.com/jhoicas/container-sales-api/internal/application/dashboard"
	"github.com/jhoicas/container-sales-api/internal/application/salesorder"
	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/internal/domain/reporting"
	apphttp "github.com/jhoicas/container-sales-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type stubContainers struct {
	mu       sync.Mutex
	inserted []*entity.Container
	err      error
}

func (s *stubContainers) Create(_ context.Context, c *entity.Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	c.ID = "665f1c2e8a1b2c3d4e5f6a7b"
	s.inserted = append(s.inserted, c)
	return nil
}

type stubActivity struct {
	entries []*entity.ActivityLog
}

func (s *stubActivity) Append(_ context.Context, e *entity.ActivityLog) error {
	s.entries = append(s.entries, e)
	return nil
}

type stubPublisher struct {
	events []string
}

func (s *stubPublisher) Publish(_ context.Context, event string, _ any) error {
	s.events = append(s.events, event)
	return nil
}

type stubOrders struct {
	updated []*entity.ContainerOrder
	matched int64
	err     error
}

func (s *stubOrders) Update(_ context.Context, o *entity.ContainerOrder) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.updated = append(s.updated, o)
	return s.matched, nil
}

// stubSales suma fija por tipo de consulta y guarda los filtros recibidos.
type stubSales struct {
	mu      sync.Mutex
	gross   decimal.Decimal
	balance decimal.Decimal
	filters []reporting.Filter
	err     error
}

func (s *stubSales) SumGrossSales(_ context.Context, f reporting.Filter) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, f)
	return s.gross, s.err
}

func (s *stubSales) SumBalanceAmount(_ context.Context, f reporting.Filter) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, f)
	return s.balance, s.err
}

type stubReport struct{}

func (stubReport) GenerateSalesReport(_ context.Context, _ *dashboard.Summary) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type testEnv struct {
	app        *fiber.App
	containers *stubContainers
	activity   *stubActivity
	publisher  *stubPublisher
	orders     *stubOrders
	sales      *stubSales
}

func newTestEnv(jwtSecret string) *testEnv {
	env := &testEnv{
		containers: &stubContainers{},
		activity:   &stubActivity{},
		publisher:  &stubPublisher{},
		orders:     &stubOrders{matched: 1},
		sales:      &stubSales{gross: decimal.RequireFromString("4000"), balance: decimal.RequireFromString("1200.5")},
	}
	clock := func() time.Time { return time.Date(2024, time.July, 1, 4, 0, 0, 0, time.UTC) }

	salesUC := dashboard.NewSalesUseCase(env.sales, time.UTC).WithClock(clock)
	env.app = fiber.New()
	apphttp.Router(env.app, apphttp.RouterDeps{
		CreateContainer: container.NewCreateContainerUseCase(env.containers, env.activity, env.publisher, nil),
		EditSalesOrder:  salesorder.NewEditSalesOrderUseCase(env.orders, nil),
		Sales:           salesUC,
		Report:          dashboard.NewReportUseCase(salesUC, stubReport{}),
		JWTSecret:       jwtSecret,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.doReq(t, req)
}

func (e *testEnv) doReq(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

const validContainer = `{"SpsicNo":"SPS-2024-118","ContainerNo":"MSCU1234567","Boxes":1200,"Location":"Cebu","userName":"maria"}`

// ──────────────────────────────────────────────────────────────────────────────
// CreateContainer
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateContainer_Valido(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPost, "/api/Container/CreateContainer", validContainer)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"success": true}, body)
	require.Len(t, env.containers.inserted, 1)
	assert.Equal(t, "1200", env.containers.inserted[0].Boxes, "número JSON guardado como texto")
	assert.Len(t, env.activity.entries, 1)
	assert.Equal(t, []string{"newData"}, env.publisher.events)
}

func TestCreateContainer_FaltaContainerNo_400(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPost, "/api/Container/CreateContainer", `{"SpsicNo":"SPS-1"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "Missing required fields", body["message"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, "debe listar los campos faltantes")
	assert.Contains(t, fields, "ContainerNo")
	assert.Empty(t, env.containers.inserted)
	assert.Empty(t, env.activity.entries)
	assert.Empty(t, env.publisher.events)
}

func TestCreateContainer_CuerpoInvalido_400(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPost, "/api/Container/CreateContainer", `{"SpsicNo":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestCreateContainer_ErrorDePersistencia_500(t *testing.T) {
	env := newTestEnv("")
	env.containers.err = errors.New("server selection timeout")

	resp, body := env.do(t, http.MethodPost, "/api/Container/CreateContainer", validContainer)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Contains(t, body["error"], "server selection timeout")
}

func TestCreateContainer_OtroVerbo_405(t *testing.T) {
	env := newTestEnv("")

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		resp, body := env.do(t, method, "/api/Container/CreateContainer", "")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, method)
		assert.Equal(t, "POST", resp.Header.Get("Allow"), method)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"], method)
	}
	assert.Empty(t, env.containers.inserted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchSalesToday_DevuelveTotal(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodGet, "/api/Dashboard/FetchSalesToday?location=Cebu&role=Staff&month=06&year=2024", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4000.0, body["totalGrossSalesToday"])

	require.Len(t, env.sales.filters, 1)
	f := env.sales.filters[0]
	assert.Equal(t, "Cash", f.PaymentMode)
	assert.Equal(t, "2024-06-01", f.DateOrder.From)
	assert.Equal(t, "2024-07-01", f.DateOrder.Before)
	assert.Equal(t, "Cebu", f.Location)
}

func TestFetchSalesToday_SinParametrosUsaHoy(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodGet, "/api/Dashboard/FetchSalesToday", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, env.sales.filters, 1)
	assert.Equal(t, "2024-07-01", env.sales.filters[0].DateOrder.Equals)
	assert.False(t, env.sales.filters[0].HasLocation())
}

func TestFetchSalesToday_ErrorDeAgregacion_500(t *testing.T) {
	env := newTestEnv("")
	env.sales.err = errors.New("Failed to parse number 'abc' in $convert")

	resp, body := env.do(t, http.MethodGet, "/api/Dashboard/FetchSalesToday?month=06&year=2024", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body["code"])
}

func TestFetchSalesToday_OtroVerbo_405(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodPost, "/api/Dashboard/FetchSalesToday", "")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET", resp.Header.Get("Allow"))
}

func TestFetchPediente_SaldoInicial(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodGet, "/api/Dashboard/FetchPediente?location=Cebu&month=06&year=2024", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1200.5, body["previousBalance"])
	require.Len(t, env.sales.filters, 1)
	assert.Equal(t, "2024-06-01", env.sales.filters[0].DateOrder.Before)
	assert.Empty(t, env.sales.filters[0].PaymentMode)
}

func TestSalesReport_PDF(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodGet, "/api/Dashboard/SalesReport?location=Cebu&month=06&year=2024", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sales-report_cebu_2024-07-01.pdf")
}

func TestSalesReport_OtroVerbo_405(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodDelete, "/api/Dashboard/SalesReport", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// EditPediente
// ──────────────────────────────────────────────────────────────────────────────

func TestEditPediente_Valido(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente",
		`{"id":"665f1c2e8a1b2c3d4e5f6a7b","BuyersName":"Juan","GrossSales":"2500.50","BalanceAmount":500,"BoxSales":10}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Data updated successfully", body["message"])
	require.Len(t, env.orders.updated, 1)
	o := env.orders.updated[0]
	assert.True(t, o.GrossSales.Equal(decimal.RequireFromString("2500.5")))
	assert.Equal(t, "10", o.BoxSales)
}

func TestEditPediente_MontoVacioEsCero(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente",
		`{"id":"665f1c2e8a1b2c3d4e5f6a7b","GrossSales":"1500","PayAmount":"","Location":"Davao"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, env.orders.updated, 1)
	o := env.orders.updated[0]
	assert.True(t, o.PayAmount.IsZero())
	assert.Equal(t, "Davao", o.Location)
}

func TestEditPediente_IDInexistente_IgualResponde200(t *testing.T) {
	env := newTestEnv("")
	env.orders.matched = 0

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente", `{"id":"665f1c2e8a1b2c3d4e5f6a7b"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestEditPediente_IDMalFormado_400(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente", `{"id":"123"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, env.orders.updated)
}

func TestEditPediente_MontoNoNumerico_400(t *testing.T) {
	env := newTestEnv("")

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente",
		`{"id":"665f1c2e8a1b2c3d4e5f6a7b","GrossSales":"mucho"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestEditPediente_ErrorDePersistencia_500(t *testing.T) {
	env := newTestEnv("")
	env.orders.err = errors.New("connection reset")

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente", `{"id":"665f1c2e8a1b2c3d4e5f6a7b"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["error"], "connection reset")
}

func TestEditPediente_OtroVerbo_405(t *testing.T) {
	env := newTestEnv("")

	resp, _ := env.do(t, http.MethodPost, "/api/PedienteManual/EditPediente", `{}`)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "PUT", resp.Header.Get("Allow"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación opcional
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ConJWT_SinTokenEs401(t *testing.T) {
	env := newTestEnv(testJWTSecret)

	resp, _ := env.do(t, http.MethodGet, "/api/Dashboard/FetchSalesToday", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ConJWT_VerboIncorrectoSinTokenEs405(t *testing.T) {
	env := newTestEnv(testJWTSecret)

	resp, _ := env.do(t, http.MethodDelete, "/api/Dashboard/FetchSalesToday", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET", resp.Header.Get("Allow"))

	resp, _ = env.do(t, http.MethodGet, "/api/PedienteManual/EditPediente", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "PUT", resp.Header.Get("Allow"))
}

func TestRouter_ConJWT_UserNameDelToken(t *testing.T) {
	env := newTestEnv(testJWTSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/Container/CreateContainer",
		strings.NewReader(`{"SpsicNo":"SPS-1","ContainerNo":"MSCU7654321"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, testIdentity))
	resp, _ := env.doReq(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, env.activity.entries, 1)
	assert.Equal(t, "maria Has Been Created Container Number: MSCU7654321", env.activity.entries[0].Message)
}

func TestRespondError_MapeaErrInvalidInput(t *testing.T) {
	env := newTestEnv("")
	env.orders.err = domain.ErrInvalidInput

	resp, body := env.do(t, http.MethodPut, "/api/PedienteManual/EditPediente", `{"id":"665f1c2e8a1b2c3d4e5f6a7b"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}
