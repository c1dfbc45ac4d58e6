package model

import "time"

type TradeType string

const (
	TradeTypeLong  TradeType = "LONG"
	TradeTypeShort TradeType = "SHORT"
)

type Broker string

const (
	BrokerZerodha Broker = "ZERODHA"
	BrokerGroww   Broker = "GROWW"
	BrokerOther   Broker = "OTHER"
)

// EmotionBefore values a trader can tag before entering a position.
const (
	EmotionConfident = "Confident"
	EmotionFearful   = "Fearful"
	EmotionFOMO      = "FOMO"
	EmotionRevenge   = "Revenge"
	EmotionPlanned   = "Planned"
	EmotionImpulsive = "Impulsive"
)

// EmotionAfter values a trader can tag once the trade is closed.
const (
	EmotionSatisfied  = "Satisfied"
	EmotionRegretful  = "Regretful"
	EmotionRelieved   = "Relieved"
	EmotionFrustrated = "Frustrated"
	EmotionLearning   = "Learning"
)

// Trade is a single position in the journal. ExitPrice, Pnl and IsWinner stay
// null while the trade is open.
type Trade struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	TradingDayID  *uint     `json:"trading_day_id"`
	TradeDate     time.Time `gorm:"not null;type:date;index" json:"trade_date"`
	TradeTime     *string   `json:"trade_time"`
	Symbol        string    `gorm:"not null" json:"symbol"`
	TradeType     TradeType `gorm:"not null" json:"trade_type"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	EntryPrice    float64   `gorm:"not null" json:"entry_price"`
	ExitPrice     *float64  `json:"exit_price"`
	Pnl           *float64  `json:"pnl"`
	IsWinner      *bool     `json:"is_winner"`
	IsClosed      bool      `gorm:"not null;default:false" json:"is_closed"`
	Broker        Broker    `gorm:"not null;default:ZERODHA" json:"broker"`
	EmotionBefore *string   `json:"emotion_before"`
	EmotionAfter  *string   `json:"emotion_after"`
	Notes         *string   `json:"notes"`
	ScreenshotURL *string   `json:"screenshot_url"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// PnlValue returns the realized P&L, 0 while the trade is open.
func (t Trade) PnlValue() float64 {
	if t.Pnl == nil {
		return 0
	}
	return *t.Pnl
}

// ComputePnl calculates the realized profit or loss of a closed trade.
// LONG wins when exit is above entry, SHORT when exit is below.
func ComputePnl(tradeType TradeType, entryPrice, exitPrice, quantity float64) float64 {
	if tradeType == TradeTypeShort {
		return (entryPrice - exitPrice) * quantity
	}
	return (exitPrice - entryPrice) * quantity
}
