package dto

// ReplaceRulesRequest rewrites the user's full rule set. The settings screen
// saves with delete-all then insert-all, order is the slice order.
type ReplaceRulesRequest struct {
	Rules []RuleDTO `json:"rules" validate:"required,dive"`
}

type RuleDTO struct {
	RuleText string `json:"rule_text" validate:"required"`
	Category string `json:"category" validate:"required"`
	IsActive bool   `json:"is_active"`
}
