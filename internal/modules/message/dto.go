package message

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	PropertyID *int64 `json:"property_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body" binding:"required"`
}
