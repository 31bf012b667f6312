package entity

import "time"

// Container registro de un embarque (contenedor) recibido en una sucursal.
// Los campos numéricos del formulario (Boxes, TotalQuantity, TotalGrossSales)
// se guardan tal como llegan; ningún reporte del dashboard los agrega.
type Container struct {
	ID              string
	ReferenceNumber string
	SpsicNo         string // permiso de importación SPS-IC, obligatorio
	DateArrived     string
	DateSoldout     string
	SupplierName    string
	ContainerNo     string // obligatorio
	ContainerType   string
	Country         string
	Boxes           string
	TotalQuantity   string
	TotalGrossSales string
	Commodity       string
	Size            string
	Freezing        string
	Status          string
	BoxType         string
	Remarks         string
	Location        string
	PlaceSales      string
	CreatedAt       time.Time
}
