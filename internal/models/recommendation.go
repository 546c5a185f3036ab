package models

// QueueActionRecommendation — рекомендация "следующего шага" для админа точки.
// Чисто информационная, движок очереди её не читает.
type QueueActionRecommendation struct {
	ActionTitle       string `json:"action_title"`
	ActionDescription string `json:"action_description"`
	Priority          string `json:"priority"`             // Critical | High | Medium | Low
	SuggestedAction   string `json:"suggested_action_type"` // ALLOCATE_STAFF | PAUSE_QUEUE | SPEED_UP | COMMUNICATE_DELAY | NORMAL
	RelatedServiceID  string `json:"related_service_id,omitempty"`
}
