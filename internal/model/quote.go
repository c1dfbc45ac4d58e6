package model

import "time"

// Quote is a motivational quote surfaced on the dashboard.
type Quote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuoteText string    `gorm:"not null" json:"quote_text"`
	Author    *string   `json:"author"`
	Category  string    `gorm:"not null" json:"category"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Quote) TableName() string {
	return "quotes"
}
