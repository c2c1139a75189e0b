package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// SlipStore is an interface that abstracts slip persistence
// This allows for easier testing and mocking
type SlipStore interface {
	Save(ctx context.Context, slip *models.Slip) error
	Get(ctx context.Context, cycleID uint64, slipID uuid.UUID) (*models.Slip, error)
	SaveBatch(ctx context.Context, slips []*models.Slip) error
	GetByCycle(ctx context.Context, cycleID uint64) ([]*models.Slip, error)
	Ping(ctx context.Context) error
	Close() error
}
