package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Ledger is an interface that abstracts the authoritative ledger. Slip
// submission and prize claims are single atomic operations on its side;
// the engine produces payloads and reads recorded state back.
type Ledger interface {
	SubmitSlip(ctx context.Context, payload *models.SlipPayload) error
	PrizePool(ctx context.Context, cycleID uint64) (uint64, error)
	Claim(ctx context.Context, cycleID uint64, slipID uuid.UUID, playerID string, amount uint64) error
	IsClaimed(ctx context.Context, slipID uuid.UUID) (bool, error)
}
