package models

// Hashtag names are stored lowercase without the leading '#'.
type Hashtag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100"`
}
