package dto

import "time"

// CreateTradeRequest carries a manually logged trade. The entry form always
// supplies both entry and exit, P&L and the winner flag are derived
// server-side.
type CreateTradeRequest struct {
	TradeDate     string   `json:"trade_date" validate:"required,datetime=2006-01-02"`
	TradeTime     *string  `json:"trade_time" validate:"omitempty,datetime=15:04"`
	Symbol        string   `json:"symbol" validate:"required"`
	TradeType     string   `json:"trade_type" validate:"required,oneof=LONG SHORT"`
	Quantity      float64  `json:"quantity" validate:"required,gt=0"`
	EntryPrice    float64  `json:"entry_price" validate:"required,gt=0"`
	ExitPrice     *float64 `json:"exit_price" validate:"omitempty,gt=0"`
	Broker        string   `json:"broker" validate:"required,oneof=ZERODHA GROWW OTHER"`
	EmotionBefore *string  `json:"emotion_before" validate:"omitempty,oneof=Confident Fearful FOMO Revenge Planned Impulsive"`
	EmotionAfter  *string  `json:"emotion_after" validate:"omitempty,oneof=Satisfied Regretful Relieved Frustrated Learning"`
	Notes         *string  `json:"notes"`
	ScreenshotURL *string  `json:"screenshot_url"`
}

type UpdateTradeRequest struct {
	CreateTradeRequest
}

// GetTradesParam filters a user's trade ledger.
type GetTradesParam struct {
	UserID    uint
	StartDate *time.Time
	EndDate   *time.Time
	IsClosed  *bool
	OrderDesc bool
}
