package model

import "time"

// TradingRule is one checklist item in a user's personal rule set. RuleOrder
// is dense and unique per user and defines display order.
type TradingRule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RuleOrder int       `gorm:"not null" json:"rule_order"`
	RuleText  string    `gorm:"not null" json:"rule_text"`
	Category  string    `gorm:"not null" json:"category"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradingRule) TableName() string {
	return "trading_rules"
}

// DefaultTradingRules is the seed checklist every new user starts with.
func DefaultTradingRules(userID uint) []TradingRule {
	seed := []struct {
		text     string
		category string
	}{
		{"Risk Management First - Never risk more than defined limits", "Risk Management"},
		{"Always Honor Stop Loss - No moving SL against the trade", "Risk Management"},
		{"Proper Position Sizing - Size based on SL distance, not conviction", "Risk Management"},
		{"Be Agile in Booking Profits - Don't be greedy, book partial profits", "Profit Taking"},
		{"Never Let a Winner Turn into a Loser - Trail SL to breakeven", "Profit Taking"},
		{"Be Patient - Wait for Proper Entry - No FOMO trades", "Discipline"},
		{"Stick to Daily/Weekly/Monthly Targets - Stop when target achieved", "Discipline"},
	}

	rules := make([]TradingRule, 0, len(seed))
	for i, s := range seed {
		rules = append(rules, TradingRule{
			UserID:    userID,
			RuleOrder: i + 1,
			RuleText:  s.text,
			Category:  s.category,
			IsActive:  true,
		})
	}
	return rules
}
