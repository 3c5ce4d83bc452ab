package entity

type User struct {
	BaseEntity
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"unique;type:varchar(100);not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`

	Tasks       []Task       `json:"-" gorm:"foreignKey:OwnerID"`
	Memberships []ChatMember `json:"-" gorm:"foreignKey:MemberID"`
	Messages    []Message    `json:"-" gorm:"foreignKey:SenderID"`
}
