package service

import (
	"context"

	"github.com/MKhiriev/quiet-inbox/models"
)

// deferralWindows is the fixed recommendation catalogue served to every
// user until per-user notification statistics exist to derive windows from.
var deferralWindows = []models.DeferralRecommendation{
	{
		WindowName: "Morning Digest",
		StartTime:  "08:00",
		EndTime:    "09:00",
		Confidence: 0.85,
		Reason:     "Based on your notification patterns",
	},
	{
		WindowName: "Lunch Break",
		StartTime:  "12:30",
		EndTime:    "13:00",
		Confidence: 0.78,
		Reason:     "Low activity period detected",
	},
	{
		WindowName: "Evening Review",
		StartTime:  "18:00",
		EndTime:    "18:30",
		Confidence: 0.82,
		Reason:     "End of workday summary",
	},
}

type recommendationService struct{}

func NewRecommendationService() RecommendationService {
	return &recommendationService{}
}

// DeferralWindows returns suggested deferral windows for the user. The
// catalogue is currently static and identical for all users.
func (r *recommendationService) DeferralWindows(_ context.Context, _ int64) ([]models.DeferralRecommendation, error) {
	windows := make([]models.DeferralRecommendation, len(deferralWindows))
	copy(windows, deferralWindows)

	return windows, nil
}
