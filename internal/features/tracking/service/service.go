package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"proposal-tracker-backend/internal/common/logger"
	"proposal-tracker-backend/internal/features/tracking/models"
)

type TrackingService interface {
	// Record logs a beacon event. It never fails: analytics are
	// best-effort on both ends of the wire.
	Record(ctx context.Context, event models.BeaconEvent)
}

type trackingService struct{}

func NewTrackingService() TrackingService {
	return &trackingService{}
}

func (s *trackingService) Record(_ context.Context, event models.BeaconEvent) {
	event.ID = uuid.NewString()
	event.ReceivedAt = time.Now().UTC()

	logger.Info().
		Str("event_id", event.ID).
		Str("event", event.Name).
		Str("client_uid", event.ClientUID).
		Str("label", event.Label).
		Str("path", event.Path).
		Str("url", event.URL).
		Str("page", event.Page).
		Msg("Beacon event")
}
