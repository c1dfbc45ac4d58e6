package model

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Profile is one user's configuration and capital state, 1:1 with the user.
type Profile struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName            *string   `json:"full_name"`
	StartingCapital     float64   `gorm:"not null" json:"starting_capital"`
	CurrentCapital      float64   `gorm:"not null" json:"current_capital"`
	MaxDailyLoss        float64   `gorm:"not null" json:"max_daily_loss"`
	MaxTradeLoss        float64   `gorm:"not null" json:"max_trade_loss"`
	MaxTradesPerDay     *int      `json:"max_trades_per_day"`
	DailyTarget         float64   `gorm:"not null" json:"daily_target"`
	WeeklyTarget        float64   `gorm:"not null" json:"weekly_target"`
	MonthlyTarget       float64   `gorm:"not null" json:"monthly_target"`
	TargetHitRatio      float64   `gorm:"not null" json:"target_hit_ratio"`
	TargetROI           float64   `gorm:"not null" json:"target_roi"`
	Theme               Theme     `gorm:"not null;default:system" json:"theme"`
	OnboardingCompleted bool      `gorm:"not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
