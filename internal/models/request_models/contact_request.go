package request_models

type ContactMessageRequest struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject" binding:"required,min=5"`
	Message  string `json:"message" binding:"required,min=20"`
}
