package dto

// CreateEnquiryRequest is bound from a JSON body or multipart form
// (the attachment, when present, is handled separately by the upload store).
type CreateEnquiryRequest struct {
	ToUser  string `json:"to_user"  form:"to_user" validate:"omitempty,uuid"`
	Subject string `json:"subject"  form:"subject" validate:"required,min=2"`
	Message string `json:"message"  form:"message" validate:"required,min=2"`
}

type RespondEnquiryRequest struct {
	Response string `json:"response" validate:"required,min=1"`
}

type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending responded closed"`
}

type EnquiryResponse struct {
	ID            string  `json:"id"`
	FromUser      string  `json:"from_user"`
	FromUserName  string  `json:"from_user_name,omitempty"`
	ToUser        string  `json:"to_user"`
	Subject       string  `json:"subject"`
	Message       string  `json:"message"`
	Response      *string `json:"response"`
	RespondedBy   *string `json:"responded_by"`
	RespondedAt   *string `json:"responded_at"`
	Status        string  `json:"status"`
	AttachmentURL *string `json:"attachment_url"`
	CreatedAt     string  `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
