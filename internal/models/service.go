package models

// Service - элемент справочника услуг (категория работы),
// на который ссылается анкета соискателя.
type Service struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
