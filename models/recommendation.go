package models

// DeferralRecommendation describes one suggested notification-deferral
// window. Recommendations are currently produced by a static rule set.
type DeferralRecommendation struct {
	WindowName string  `json:"window_name"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}
