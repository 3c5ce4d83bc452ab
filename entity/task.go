package entity

type Task struct {
	BaseEntity
	Title       string  `json:"title" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text"`
	// canonical "2006-01-02" / "15:04" strings, so lexicographic order
	// matches chronological order
	DueDate     *string `json:"dueDate" gorm:"type:varchar(10)"`
	DueTime     *string `json:"dueTime" gorm:"type:varchar(5)"`
	OwnerID     string  `json:"ownerId" gorm:"type:varchar(255);not null"`
	ChatID      *string `json:"chatId" gorm:"type:varchar(255)"`

	Owner User  `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE;"`
	Chat  *Chat `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:SET NULL;"`
}
