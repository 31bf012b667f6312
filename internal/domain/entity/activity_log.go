package entity

import (
	"fmt"
	"time"
)

// ActivityLog entrada de auditoría append-only. Nunca se modifica ni se borra.
type ActivityLog struct {
	ID          string
	UserName    string
	Location    string
	SpsicNo     string
	Message     string
	ContainerNo string
	Boxes       string
	CreatedAt   time.Time
}

// NewContainerCreatedLog arma la entrada que acompaña la creación de un contenedor.
func NewContainerCreatedLog(userName string, c *Container, at time.Time) *ActivityLog {
	return &ActivityLog{
		UserName:    userName,
		Location:    c.Location,
		SpsicNo:     c.SpsicNo,
		Message:     fmt.Sprintf("%s Has Been Created Container Number: %s", userName, c.ContainerNo),
		ContainerNo: c.ContainerNo,
		Boxes:       c.Boxes,
		CreatedAt:   at,
	}
}
