package container_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/container-sales-api/internal/application/container"
	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/pkg/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeContainers struct {
	inserted []*entity.Container
	err      error
}

func (f *fakeContainers) Create(_ context.Context, c *entity.Container) error {
	if f.err != nil {
		return f.err
	}
	c.ID = "665f1c2e8a1b2c3d4e5f6a7b"
	f.inserted = append(f.inserted, c)
	return nil
}

type fakeActivity struct {
	entries []*entity.ActivityLog
	err     error
}

func (f *fakeActivity) Append(_ context.Context, e *entity.ActivityLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

type fakePublisher struct {
	events   []string
	payloads []any
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, event string, payload any) error {
	f.events = append(f.events, event)
	f.payloads = append(f.payloads, payload)
	return f.err
}

var fixedNow = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

func validRequest() dto.CreateContainerRequest {
	return dto.CreateContainerRequest{
		ReferenceNumber: "REF-001",
		SpsicNo:         "SPS-2024-118",
		ContainerNo:     "MSCU1234567",
		SupplierName:    "Pacific Seafoods",
		Boxes:           "1200",
		Commodity:       "Mackerel",
		Location:        "Cebu",
		UserName:        "maria",
	}
}

func newUseCase(c *fakeContainers, a *fakeActivity, p *fakePublisher) *container.CreateContainerUseCase {
	var uc *container.CreateContainerUseCase
	if p == nil {
		uc = container.NewCreateContainerUseCase(c, a, nil, nil)
	} else {
		uc = container.NewCreateContainerUseCase(c, a, p, nil)
	}
	return uc.WithClock(func() time.Time { return fixedNow })
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ContainerNoVacio_NoEscribeNada(t *testing.T) {
	containers, activity, pub := &fakeContainers{}, &fakeActivity{}, &fakePublisher{}
	uc := newUseCase(containers, activity, pub)

	in := validRequest()
	in.ContainerNo = ""
	_, err := uc.Create(context.Background(), in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var fe *validate.FieldsError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Fields, "ContainerNo")

	assert.Empty(t, containers.inserted, "no debe insertarse el contenedor")
	assert.Empty(t, activity.entries, "no debe insertarse la bitácora")
	assert.Empty(t, pub.events, "no debe publicarse nada")
}

func TestCreate_SpsicNoVacio_NoEscribeNada(t *testing.T) {
	containers, activity := &fakeContainers{}, &fakeActivity{}
	uc := newUseCase(containers, activity, nil)

	in := validRequest()
	in.SpsicNo = ""
	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, containers.inserted)
	assert.Empty(t, activity.entries)
}

func TestCreate_Valido_UnContenedorYUnaBitacora(t *testing.T) {
	containers, activity, pub := &fakeContainers{}, &fakeActivity{}, &fakePublisher{}
	uc := newUseCase(containers, activity, pub)

	out, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, containers.inserted, 1)
	require.Len(t, activity.entries, 1)

	c := containers.inserted[0]
	assert.Equal(t, fixedNow, c.CreatedAt, "createdAt lo asigna el servidor")
	assert.Equal(t, "1200", c.Boxes)

	entry := activity.entries[0]
	assert.Contains(t, entry.Message, "maria")
	assert.Contains(t, entry.Message, "MSCU1234567")
	assert.Equal(t, "maria Has Been Created Container Number: MSCU1234567", entry.Message)
	assert.Equal(t, "Cebu", entry.Location)
	assert.Equal(t, "SPS-2024-118", entry.SpsicNo)
	assert.Equal(t, "1200", entry.Boxes)

	require.Equal(t, []string{"newData"}, pub.events, "se publica exactamente una vez")
	assert.Equal(t, out, pub.payloads[0])
	assert.Equal(t, "665f1c2e8a1b2c3d4e5f6a7b", out.ID)
}

func TestCreate_SinPublicador_NoEsError(t *testing.T) {
	containers, activity := &fakeContainers{}, &fakeActivity{}
	uc := newUseCase(containers, activity, nil)

	_, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, containers.inserted, 1)
}

func TestCreate_FalloAlPublicar_NoFallaLaCreacion(t *testing.T) {
	containers, activity := &fakeContainers{}, &fakeActivity{}
	pub := &fakePublisher{err: errors.New("redis no disponible")}
	uc := newUseCase(containers, activity, pub)

	_, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, pub.events, 1)
}

func TestCreate_FalloAlInsertarContenedor(t *testing.T) {
	containers := &fakeContainers{err: errors.New("write concern timeout")}
	activity, pub := &fakeActivity{}, &fakePublisher{}
	uc := newUseCase(containers, activity, pub)

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, activity.entries)
	assert.Empty(t, pub.events)
}

func TestCreate_FalloEnBitacora_ContenedorQuedaPersistido(t *testing.T) {
	containers := &fakeContainers{}
	activity := &fakeActivity{err: errors.New("conexión cerrada")}
	pub := &fakePublisher{}
	uc := newUseCase(containers, activity, pub)

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Len(t, containers.inserted, 1, "las dos escrituras no son transaccionales")
	assert.Empty(t, pub.events)
}
