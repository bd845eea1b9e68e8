package models

import "time"

// Lead is a captured contact/waitlist submission, persisted locally when
// the remote spreadsheet endpoint cannot be reached.
type Lead struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50"`
	Source    string `gorm:"size:50"`
	CreatedAt time.Time
}

type LeadForm struct {
	Name   string `form:"name" validate:"required,min=2,max=100"`
	Email  string `form:"email" validate:"required,email"`
	Phone  string `form:"phone" validate:"required,min=6,max=20"`
	Source string `form:"-"`
}
