// Package container contiene los casos de uso de embarques (contenedores).
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/container-sales-api/internal/application/dto"
	"github.com/jhoicas/container-sales-api/internal/application/ports"
	"github.com/jhoicas/container-sales-api/internal/domain"
	"github.com/jhoicas/container-sales-api/internal/domain/entity"
	"github.com/jhoicas/container-sales-api/internal/domain/repository"
	"github.com/jhoicas/container-sales-api/pkg/logger"
	"github.com/jhoicas/container-sales-api/pkg/validate"
)

// CreateContainerUseCase registra un contenedor nuevo y su entrada en la bitácora.
//
// Pasos (secuenciales, sin transacción):
//  1. Validar ContainerNo y SpsicNo.
//  2. Insertar el contenedor.
//  3. Insertar la entrada de ActivityLogs.
//  4. Publicar "newData" si hay publicador.
//
// Si el proceso cae entre 2 y 3 el contenedor queda sin entrada de bitácora.
type CreateContainerUseCase struct {
	containers repository.ContainerRepository
	activity   repository.ActivityLogRepository
	publisher  ports.EventPublisher
	log        *logger.Logger
	now        func() time.Time
}

// NewCreateContainerUseCase construye el caso de uso. publisher puede ser nil.
func NewCreateContainerUseCase(
	containers repository.ContainerRepository,
	activity repository.ActivityLogRepository,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *CreateContainerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateContainerUseCase{
		containers: containers,
		activity:   activity,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *CreateContainerUseCase) WithClock(now func() time.Time) *CreateContainerUseCase {
	uc.now = now
	return uc
}

// Create valida y persiste el contenedor. Retorna domain.ErrInvalidInput (envolviendo
// *validate.FieldsError) si faltan campos obligatorios; en ese caso no se escribe nada.
func (uc *CreateContainerUseCase) Create(ctx context.Context, in dto.CreateContainerRequest) (*dto.ContainerResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	now := uc.now()
	c := &entity.Container{
		ReferenceNumber: in.ReferenceNumber,
		SpsicNo:         in.SpsicNo,
		DateArrived:     in.DateArrived,
		DateSoldout:     in.DateSoldout,
		SupplierName:    in.SupplierName,
		ContainerNo:     in.ContainerNo,
		ContainerType:   in.ContainerType,
		Country:         in.Country,
		Boxes:           in.Boxes.String(),
		TotalQuantity:   in.TotalQuantity.String(),
		TotalGrossSales: in.TotalGrossSales.String(),
		Commodity:       in.Commodity,
		Size:            in.Size,
		Freezing:        in.Freezing,
		Status:          in.Status,
		BoxType:         in.BoxType,
		Remarks:         in.Remarks,
		Location:        in.Location,
		PlaceSales:      in.PlaceSales,
		CreatedAt:       now,
	}
	if err := uc.containers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear contenedor: %w", err)
	}

	entry := entity.NewContainerCreatedLog(in.UserName, c, now)
	if err := uc.activity.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar actividad del contenedor %s: %w", c.ID, err)
	}

	out := toContainerResponse(c)
	uc.publish(ctx, out)
	return out, nil
}

// publish notifica a los dashboards abiertos. Un fallo aquí no revierte la creación.
func (uc *CreateContainerUseCase) publish(ctx context.Context, c *dto.ContainerResponse) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, ports.EventNewData, c); err != nil {
		uc.log.Warn().Err(err).
			Str("container_id", c.ID).
			Str("container_no", c.ContainerNo).
			Msg("no se pudo publicar newData")
	}
}

func toContainerResponse(c *entity.Container) *dto.ContainerResponse {
	return &dto.ContainerResponse{
		ID:              c.ID,
		ReferenceNumber: c.ReferenceNumber,
		SpsicNo:         c.SpsicNo,
		DateArrived:     c.DateArrived,
		DateSoldout:     c.DateSoldout,
		SupplierName:    c.SupplierName,
		ContainerNo:     c.ContainerNo,
		ContainerType:   c.ContainerType,
		Country:         c.Country,
		Boxes:           c.Boxes,
		TotalQuantity:   c.TotalQuantity,
		TotalGrossSales: c.TotalGrossSales,
		Commodity:       c.Commodity,
		Size:            c.Size,
		Freezing:        c.Freezing,
		Status:          c.Status,
		BoxType:         c.BoxType,
		Remarks:         c.Remarks,
		Location:        c.Location,
		PlaceSales:      c.PlaceSales,
		CreatedAt:       c.CreatedAt,
	}
}
