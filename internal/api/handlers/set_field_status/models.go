package set_field_status

// SetStatusRequest тело запроса смены статуса поля
type SetStatusRequest struct {
	Status string `json:"status"`
}
