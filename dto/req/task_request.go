package req

type TaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"dueTime" validate:"omitempty,datetime=15:04"`
	OwnerID     string  `json:"ownerId"`
	ChatID      *string `json:"chatId"`
}
