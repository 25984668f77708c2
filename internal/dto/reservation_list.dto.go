package dto

type ReservationListDTO struct {
	ID              uint   `json:"id"`
	Reference       string `json:"reference"`
	ReservationDate string `json:"reservation_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	StaffName       string `json:"staff_name"`
	ServiceName     string `json:"service_name"`
}
