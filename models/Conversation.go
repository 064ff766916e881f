package models

import "gorm.io/gorm"

// Conversation is a message thread between a tourist and a vendor about a
// specific service. The composite unique index guarantees at most one
// thread per (service, tourist, vendor) triple; concurrent first-contact
// requests rely on it to collapse into a single thread.
type Conversation struct {
	gorm.Model
	ServiceID uint    `json:"serviceID" gorm:"not null;uniqueIndex:idx_conversation_triple"`
	Service   Service `json:"service" gorm:"foreignKey:ServiceID"`
	TouristID uint    `json:"touristID" gorm:"not null;uniqueIndex:idx_conversation_triple"`
	Tourist   User    `json:"tourist" gorm:"foreignKey:TouristID"`
	VendorID  uint    `json:"vendorID" gorm:"not null;uniqueIndex:idx_conversation_triple"`
	Vendor    User    `json:"vendor" gorm:"foreignKey:VendorID"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// IsParticipant reports whether the given user is one of the two sides of
// the conversation.
func (c *Conversation) IsParticipant(userID uint) bool {
	return userID == c.TouristID || userID == c.VendorID
}
