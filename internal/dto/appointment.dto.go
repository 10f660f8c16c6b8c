package dto

// AppointmentDTO est la forme exposée par l'API : nom du client résolu et
// date au format du contrat ("2006-01-02T15:04").
type AppointmentDTO struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Customer        string `json:"customer"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceCode     string `json:"service_code,omitempty"`
	BlockIndex      int    `json:"block_index"`
}
