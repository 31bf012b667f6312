package dto

// SalesQuery parámetros de los endpoints del dashboard.
// month/year en "All" o ausentes = sin selección.
type SalesQuery struct {
	Location string `query:"location"`
	Role     string `query:"role"`
	Month    string `query:"month"`
	Year     string `query:"year"`
}

// SalesTodayResponse respuesta de GET /api/Dashboard/FetchSalesToday.
type SalesTodayResponse struct {
	TotalGrossSalesToday float64 `json:"totalGrossSalesToday"`
}

// BeginningBalanceResponse respuesta de GET /api/Dashboard/FetchPediente.
type BeginningBalanceResponse struct {
	PreviousBalance float64 `json:"previousBalance"`
}
