package dto

import "time"

// CreateContainerRequest cuerpo de POST /api/Container/CreateContainer.
// Los nombres de campo son los que ya envía el formulario del dashboard.
type CreateContainerRequest struct {
	ReferenceNumber string     `json:"ReferenceNumber"`
	SpsicNo         string     `json:"SpsicNo" validate:"required"`
	DateArrived     string     `json:"DateArrived"`
	DateSoldout     string     `json:"DateSoldout"`
	SupplierName    string     `json:"SupplierName"`
	ContainerNo     string     `json:"ContainerNo" validate:"required"`
	ContainerType   string     `json:"ContainerType"`
	Country         string     `json:"Country"`
	Boxes           FlexString `json:"Boxes"`
	TotalQuantity   FlexString `json:"TotalQuantity"`
	TotalGrossSales FlexString `json:"TotalGrossSales"`
	Commodity       string     `json:"Commodity"`
	Size            string     `json:"Size"`
	Freezing        string     `json:"Freezing"`
	Status          string     `json:"Status"`
	BoxType         string     `json:"BoxType"`
	Remarks         string     `json:"Remarks"`
	Location        string     `json:"Location"`
	PlaceSales      string     `json:"PlaceSales"`
	UserName        string     `json:"userName"`
}

// ContainerResponse representación de un contenedor en eventos en vivo.
type ContainerResponse struct {
	ID              string    `json:"_id"`
	ReferenceNumber string    `json:"ReferenceNumber"`
	SpsicNo         string    `json:"SpsicNo"`
	DateArrived     string    `json:"DateArrived"`
	DateSoldout     string    `json:"DateSoldout"`
	SupplierName    string    `json:"SupplierName"`
	ContainerNo     string    `json:"ContainerNo"`
	ContainerType   string    `json:"ContainerType"`
	Country         string    `json:"Country"`
	Boxes           string    `json:"Boxes"`
	TotalQuantity   string    `json:"TotalQuantity"`
	TotalGrossSales string    `json:"TotalGrossSales"`
	Commodity       string    `json:"Commodity"`
	Size            string    `json:"Size"`
	Freezing        string    `json:"Freezing"`
	Status          string    `json:"Status"`
	BoxType         string    `json:"BoxType"`
	Remarks         string    `json:"Remarks"`
	Location        string    `json:"Location"`
	PlaceSales      string    `json:"PlaceSales"`
	CreatedAt       time.Time `json:"createdAt"`
}
