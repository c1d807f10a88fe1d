package dto

// ContactDTO 联系表单请求体，必填项由 handler 校验以返回固定文案
type ContactDTO struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Service *string `json:"service"`
	Budget  *string `json:"budget"`
	Message *string `json:"message"`
}

// BookingDTO 预约表单请求体
type BookingDTO struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Company      *string `json:"company"`
	Message      *string `json:"message"`
	SelectedDate string  `json:"selectedDate"`
	SelectedTime string  `json:"selectedTime"`
}
