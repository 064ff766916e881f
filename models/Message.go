package models

import "gorm.io/gorm"

// Message is a single chat entry. Append-only; listed by send time
// ascending.
type Message struct {
	gorm.Model
	ConversationID uint   `json:"conversationID" gorm:"not null;index"`
	SenderID       uint   `json:"senderID" gorm:"not null;index"`
	Sender         User   `json:"sender" gorm:"foreignKey:SenderID"`
	Body           string `json:"body" gorm:"type:text;not null"`
	IsRead         bool   `json:"isRead" gorm:"default:false"`
}
