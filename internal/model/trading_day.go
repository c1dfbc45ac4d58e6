package model

import "time"

type Mood string

const (
	MoodConfident  Mood = "Confident"
	MoodNeutral    Mood = "Neutral"
	MoodAnxious    Mood = "Anxious"
	MoodAggressive Mood = "Aggressive"
	MoodCalm       Mood = "Calm"
)

// TradingDay is one calendar day's aggregate for one user, unique per
// (user_id, date). The numeric aggregates are derived from that day's trades
// and recomputed after every trade mutation.
type TradingDay struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;uniqueIndex:idx_trading_days_user_date" json:"user_id"`
	Date                time.Time  `gorm:"not null;type:date;uniqueIndex:idx_trading_days_user_date" json:"date"`
	OpeningCapital      *float64   `json:"opening_capital"`
	ClosingCapital      *float64   `json:"closing_capital"`
	TotalPnl            float64    `gorm:"not null;default:0" json:"total_pnl"`
	TotalTrades         int        `gorm:"not null;default:0" json:"total_trades"`
	WinningTrades       int        `gorm:"not null;default:0" json:"winning_trades"`
	LosingTrades        int        `gorm:"not null;default:0" json:"losing_trades"`
	MaxProfit           float64    `gorm:"not null;default:0" json:"max_profit"`
	MaxLoss             float64    `gorm:"not null;default:0" json:"max_loss"`
	HitRatio            float64    `gorm:"not null;default:0" json:"hit_ratio"`
	ROIPercent          float64    `gorm:"not null;default:0" json:"roi_percent"`
	PreMarketMood       *Mood      `json:"pre_market_mood"`
	PreMarketNotes      *string    `json:"pre_market_notes"`
	PostMarketNotes     *string    `json:"post_market_notes"`
	DisciplineScore     *int       `json:"discipline_score"`
	RulesAcknowledged   bool       `gorm:"not null;default:false" json:"rules_acknowledged"`
	RulesAcknowledgedAt *time.Time `json:"rules_acknowledged_at"`
	IsActive            bool       `gorm:"not null;default:false" json:"is_active"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradingDay) TableName() string {
	return "trading_days"
}
