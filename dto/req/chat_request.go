package req

type CreateChatRequest struct {
	ChatName  string `json:"chat_name" validate:"required,min=1"`
	CreatorID string `json:"creator_id" validate:"required"`
	Image     string `json:"image"`
}

type UpdateChatRequest struct {
	ChatName string `json:"chat_name" validate:"required,min=1"`
	Image    string `json:"image"`
}
