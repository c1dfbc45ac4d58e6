package dto

// Limits and targets are strictly positive once onboarding completes, the
// validator enforces it at this boundary instead of guarding downstream.

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Theme    *string `json:"theme" validate:"omitempty,oneof=light dark system"`
}

type UpdateRiskLimitsRequest struct {
	MaxDailyLoss    float64 `json:"max_daily_loss" validate:"required,gt=0"`
	MaxTradeLoss    float64 `json:"max_trade_loss" validate:"required,gt=0"`
	MaxTradesPerDay *int    `json:"max_trades_per_day" validate:"omitempty,gt=0"`
}

type UpdateGoalsRequest struct {
	DailyTarget    float64 `json:"daily_target" validate:"required,gt=0"`
	WeeklyTarget   float64 `json:"weekly_target" validate:"required,gt=0"`
	MonthlyTarget  float64 `json:"monthly_target" validate:"required,gt=0"`
	TargetHitRatio float64 `json:"target_hit_ratio" validate:"omitempty,gt=0,lte=100"`
	TargetROI      float64 `json:"target_roi" validate:"omitempty,gt=0"`
}

// CompleteOnboardingRequest is the onboarding wizard payload. It writes the
// profile and seeds the active rule set in one transaction.
type CompleteOnboardingRequest struct {
	FullName        string              `json:"full_name" validate:"required"`
	StartingCapital float64             `json:"starting_capital" validate:"required,gt=0"`
	MaxDailyLoss    float64             `json:"max_daily_loss" validate:"required,gt=0"`
	MaxTradeLoss    float64             `json:"max_trade_loss" validate:"required,gt=0"`
	MaxTradesPerDay *int                `json:"max_trades_per_day" validate:"omitempty,gt=0"`
	DailyTarget     float64             `json:"daily_target" validate:"required,gt=0"`
	WeeklyTarget    float64             `json:"weekly_target" validate:"required,gt=0"`
	MonthlyTarget   float64             `json:"monthly_target" validate:"required,gt=0"`
	TargetHitRatio  float64             `json:"target_hit_ratio" validate:"omitempty,gt=0,lte=100"`
	TargetROI       float64             `json:"target_roi" validate:"omitempty,gt=0"`
	Rules           []OnboardingRuleDTO `json:"rules"`
}

// OnboardingRuleDTO mirrors one default rule the user kept or deactivated
// during onboarding. An empty Rules slice seeds the full default set.
type OnboardingRuleDTO struct {
	RuleText string `json:"rule_text" validate:"required"`
	Category string `json:"category" validate:"required"`
	IsActive bool   `json:"is_active"`
}
