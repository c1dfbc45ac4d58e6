package dto

// StartDayRequest completes the pre-trading ritual and activates today's
// trading day.
type StartDayRequest struct {
	PreMarketMood  *string `json:"pre_market_mood" validate:"omitempty,oneof=Confident Neutral Anxious Aggressive Calm"`
	PreMarketNotes *string `json:"pre_market_notes"`
}

type UpdateDayNotesRequest struct {
	PostMarketNotes *string `json:"post_market_notes"`
	DisciplineScore *int    `json:"discipline_score" validate:"omitempty,min=1,max=10"`
}
