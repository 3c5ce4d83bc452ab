package res

type MessageResponse struct {
	MessageID     string `json:"messageId"`
	SenderID      string `json:"senderId"`
	SenderName    string `json:"senderName"`
	Type          string `json:"type"`
	Content       string `json:"content"`
	FileName      string `json:"fileName,omitempty"`
	HasAttachment bool   `json:"hasAttachment"`
	CreatedAt     string `json:"createdAt"`
}
