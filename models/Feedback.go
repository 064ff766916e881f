package models

import "gorm.io/gorm"

// Feedback status values; only administrators move feedback through them.
const (
	FeedbackStatusNew        = "NEW"
	FeedbackStatusInProgress = "IN_PROGRESS"
	FeedbackStatusResolved   = "RESOLVED"
	FeedbackStatusClosed     = "CLOSED"
)

// Feedback is a user-submitted note, suggestion or bug report. UserID is
// nullable so anonymous rows survive account deletion.
type Feedback struct {
	gorm.Model
	UserID  *uint  `json:"userID" gorm:"index"`
	User    *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Subject string `json:"subject" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
	// Optional rating from 1 to 5.
	Rating *int   `json:"rating"`
	Status string `json:"status" gorm:"size:20;default:NEW;index"`
}

func ValidFeedbackStatus(s string) bool {
	switch s {
	case FeedbackStatusNew, FeedbackStatusInProgress,
		FeedbackStatusResolved, FeedbackStatusClosed:
		return true
	}
	return false
}
