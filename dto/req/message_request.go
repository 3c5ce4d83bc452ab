package req

// MessageRequest carries the multipart form fields of POST /messages.
// The attachment itself is read from the "file" form part by the handler.
type MessageRequest struct {
	SenderID string `form:"sender_user_id" validate:"required"`
	ChatID   string `form:"recipient_chat_id" validate:"required"`
	Type     string `form:"message_type"`
	Content  string `form:"content"`
}
