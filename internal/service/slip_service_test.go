package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/parlay-slip-service/internal/mocks"
	"github.com/cypherlabdev/parlay-slip-service/internal/models"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

// testSlipServiceSetup is a helper struct to hold test dependencies
type testSlipServiceSetup struct {
	service       *SlipService
	mockStore     *mocks.MockSlipStore
	mockDirectory *mocks.MockDirectory
	mockLedger    *mocks.MockLedger
	ctrl          *gomock.Controller
	ctx           context.Context
}

var (
	testNow   = time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
	testClose = time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
)

// setupTestSlipService creates a service with mocked dependencies
func setupTestSlipService(t *testing.T) *testSlipServiceSetup {
	ctrl := gomock.NewController(t)

	mockStore := mocks.NewMockSlipStore(ctrl)
	mockDirectory := mocks.NewMockDirectory(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)
	logger := zerolog.Nop()

	svc := NewSlipService(
		parlay.NewValidator(logger),
		parlay.NewSHA256Encoder(),
		mockStore,
		mockDirectory,
		mockLedger,
		5000,
		logger,
	)
	svc.now = func() time.Time { return testNow }

	return &testSlipServiceSetup{
		service:       svc,
		mockStore:     mockStore,
		mockDirectory: mockDirectory,
		mockLedger:    mockLedger,
		ctrl:          ctrl,
		ctx:           context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testSlipServiceSetup) cleanup() {
	s.ctrl.Finish()
}

func activeCycle() *models.Cycle {
	matches := make([]models.Match, 0, models.MatchesPerCycle)
	for i := 0; i < models.MatchesPerCycle; i++ {
		matches = append(matches, models.Match{
			ID:        uint64(101 + i),
			StartTime: testClose.Add(time.Hour),
			Odds: models.MatchOdds{
				HomeWin: 1500, Draw: 3200, AwayWin: 2100, Over: 1850, Under: 1950,
			},
		})
	}
	return &models.Cycle{
		ID:           7,
		Matches:      matches,
		BettingClose: testClose,
		State:        models.CycleActive,
	}
}

func resolvedCycle(winner models.Selection) *models.Cycle {
	cycle := activeCycle()
	cycle.State = models.CycleResolved
	for i := range cycle.Matches {
		cycle.Matches[i].Result = &models.MatchResult{
			Moneyline: winner,
			OverUnder: models.SelectionOver,
		}
	}
	return cycle
}

func candidateLegs(cycle *models.Cycle) []models.Leg {
	legs := make([]models.Leg, 0, len(cycle.Matches))
	for _, m := range cycle.Matches {
		legs = append(legs, models.Leg{
			MatchID:     m.ID,
			BetType:     models.BetMoneyline,
			Selection:   models.SelectionHomeWin,
			SelectedOdd: m.Odds.HomeWin,
		})
	}
	return legs
}

func storedSlip(cycle *models.Cycle, player string, placedAt time.Time) *models.Slip {
	return &models.Slip{
		ID:       uuid.New(),
		PlayerID: player,
		CycleID:  cycle.ID,
		PlacedAt: placedAt,
		Legs:     candidateLegs(cycle),
		Score:    57654,
	}
}

// TestSubmitSlip_Success tests the full happy path through window check,
// reconciliation, encoding, scoring, ledger and store
func TestSubmitSlip_Success(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.mockLedger.EXPECT().SubmitSlip(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *models.SlipPayload) error {
			assert.Equal(t, "alice", payload.PlayerID)
			assert.Equal(t, uint64(5000), payload.EntryFee)
			assert.Len(t, payload.Entries, models.MatchesPerCycle)
			return nil
		})
	setup.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, candidateLegs(cycle))

	require.NoError(t, err)
	require.NotNil(t, slip)
	assert.Equal(t, "alice", slip.PlayerID)
	assert.Equal(t, uint64(7), slip.CycleID)
	assert.Equal(t, testNow, slip.PlacedAt)
	assert.Equal(t, uint64(57654), slip.Score, "ten legs at 1.500x")
	assert.False(t, slip.Evaluated)
	for i, leg := range slip.Legs {
		assert.Equal(t, cycle.Matches[i].ID, leg.MatchID)
		assert.NotEqual(t, [32]byte{}, leg.SelectionID, "legs carry encoded ids")
	}
}

// TestSubmitSlip_BettingClosed tests the window error one second after close
func TestSubmitSlip_BettingClosed(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.service.now = func() time.Time { return testClose.Add(time.Second) }

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, candidateLegs(cycle))

	assert.Nil(t, slip)
	assert.ErrorIs(t, err, parlay.ErrBettingClosed)
}

// TestSubmitSlip_OneSecondBeforeClose tests submission right at the edge
func TestSubmitSlip_OneSecondBeforeClose(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.mockLedger.EXPECT().SubmitSlip(gomock.Any(), gomock.Any()).Return(nil)
	setup.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	setup.service.now = func() time.Time { return testClose.Add(-time.Second) }

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, candidateLegs(cycle))

	require.NoError(t, err)
	assert.NotNil(t, slip)
}

// TestSubmitSlip_CycleNotActive tests submission into an ended cycle
func TestSubmitSlip_CycleNotActive(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	cycle.State = models.CycleEnded
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, candidateLegs(cycle))

	assert.Nil(t, slip)
	assert.ErrorIs(t, err, parlay.ErrCycleNotActive)
}

// TestSubmitSlip_ValidationFailure tests validation errors surface before
// any ledger interaction (no ledger expectations are set)
func TestSubmitSlip_ValidationFailure(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)

	legs := candidateLegs(cycle)[:9]

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, legs)

	assert.Nil(t, slip)
	var verr *parlay.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, parlay.CodeWrongLegCount, verr.Code)
}

// TestSubmitSlip_StaleOdds tests a moved odd is rejected before submission
func TestSubmitSlip_StaleOdds(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)

	legs := candidateLegs(cycle)
	legs[4].SelectedOdd = 1400

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, legs)

	assert.Nil(t, slip)
	var verr *parlay.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, parlay.CodeStaleOdds, verr.Code)
	assert.Equal(t, uint64(105), verr.MatchID)
}

// TestSubmitSlip_LedgerRejection tests ledger failures keep the slip out
// of the store
func TestSubmitSlip_LedgerRejection(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := activeCycle()
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.mockLedger.EXPECT().SubmitSlip(gomock.Any(), gomock.Any()).Return(parlay.ErrInsufficientFund)

	slip, err := setup.service.SubmitSlip(setup.ctx, "alice", 7, candidateLegs(cycle))

	assert.Nil(t, slip)
	assert.ErrorIs(t, err, parlay.ErrInsufficientFund)
}

// TestGetSlip_LiveRecomputeWins tests the stored correct-count hint is
// overridden by a fresh recompute against the directory
func TestGetSlip_LiveRecomputeWins(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := resolvedCycle(models.SelectionHomeWin)
	stored := storedSlip(cycle, "alice", testNow)
	stored.CorrectCount = 3 // stale hint from an earlier evaluation
	stored.Evaluated = false

	setup.mockStore.EXPECT().Get(gomock.Any(), uint64(7), stored.ID).Return(stored, nil)
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)

	slip, err := setup.service.GetSlip(setup.ctx, 7, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, 10, slip.CorrectCount, "live recompute wins over the hint")
	assert.True(t, slip.Evaluated)
}

// TestGetSlip_NotFound tests missing slips map to the domain error
func TestGetSlip_NotFound(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	id := uuid.New()
	setup.mockStore.EXPECT().Get(gomock.Any(), uint64(7), id).Return(nil, assert.AnError)

	slip, err := setup.service.GetSlip(setup.ctx, 7, id)

	assert.Nil(t, slip)
	assert.ErrorIs(t, err, parlay.ErrSlipNotFound)
}

// TestLeaderboard_Resolved tests ranking of a resolved cycle with live
// recomputation
func TestLeaderboard_Resolved(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := resolvedCycle(models.SelectionHomeWin)

	winner := storedSlip(cycle, "winner", testNow)
	loser := storedSlip(cycle, "loser", testNow.Add(time.Minute))
	for i := range loser.Legs {
		loser.Legs[i].Selection = models.SelectionAwayWin
		loser.Legs[i].SelectedOdd = 2100
	}
	loser.Score = 99999999 // stale placeholder, ranking uses stored score

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleResolved, nil)
	setup.mockStore.EXPECT().GetByCycle(gomock.Any(), uint64(7)).Return([]*models.Slip{loser, winner}, nil)
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil).Times(2)

	entries, err := setup.service.Leaderboard(setup.ctx, 7)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// loser kept a higher stored score but zero correct legs; score is the
	// primary key, so it still ranks first.
	assert.Equal(t, "loser", entries[0].PlayerID)
	assert.Equal(t, 0, entries[0].CorrectCount)
	assert.Equal(t, "winner", entries[1].PlayerID)
	assert.Equal(t, 10, entries[1].CorrectCount)
}

// TestLeaderboard_Unresolved tests the cycle-unresolved guard
func TestLeaderboard_Unresolved(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleActive, nil)

	entries, err := setup.service.Leaderboard(setup.ctx, 7)

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, parlay.ErrCycleUnresolved)
}

// TestClaim_Success tests an eligible rank-1 claim
func TestClaim_Success(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := resolvedCycle(models.SelectionHomeWin)
	slip := storedSlip(cycle, "alice", testNow)

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleResolved, nil)
	setup.mockStore.EXPECT().GetByCycle(gomock.Any(), uint64(7)).Return([]*models.Slip{slip}, nil)
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.mockLedger.EXPECT().PrizePool(gomock.Any(), uint64(7)).Return(uint64(100000), nil)
	setup.mockLedger.EXPECT().Claim(gomock.Any(), uint64(7), slip.ID, "alice", uint64(40000)).Return(nil)
	setup.mockStore.EXPECT().Get(gomock.Any(), uint64(7), slip.ID).Return(slip, nil)
	setup.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	amount, err := setup.service.Claim(setup.ctx, 7, slip.ID)

	require.NoError(t, err)
	assert.Equal(t, uint64(40000), amount, "rank 1 of a 100000 pool")
}

// TestClaim_AlreadyClaimed tests a repeat claim surfaces terminally
func TestClaim_AlreadyClaimed(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := resolvedCycle(models.SelectionHomeWin)
	slip := storedSlip(cycle, "alice", testNow)

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleResolved, nil)
	setup.mockStore.EXPECT().GetByCycle(gomock.Any(), uint64(7)).Return([]*models.Slip{slip}, nil)
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil)
	setup.mockLedger.EXPECT().PrizePool(gomock.Any(), uint64(7)).Return(uint64(100000), nil)
	setup.mockLedger.EXPECT().Claim(gomock.Any(), uint64(7), slip.ID, "alice", uint64(40000)).Return(parlay.ErrAlreadyClaimed)

	amount, err := setup.service.Claim(setup.ctx, 7, slip.ID)

	assert.Zero(t, amount)
	assert.ErrorIs(t, err, parlay.ErrAlreadyClaimed)
}

// TestClaim_NotEligible tests a rank past the prize table is rejected
// before the ledger is touched
func TestClaim_NotEligible(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	cycle := resolvedCycle(models.SelectionHomeWin)

	slips := make([]*models.Slip, 0, 6)
	for i := 0; i < 6; i++ {
		slips = append(slips, storedSlip(cycle, "player", testNow.Add(time.Duration(i)*time.Second)))
	}
	target := slips[5] // latest placement loses every tie-break: rank 6

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleResolved, nil)
	setup.mockStore.EXPECT().GetByCycle(gomock.Any(), uint64(7)).Return(slips, nil)
	setup.mockDirectory.EXPECT().GetCycle(uint64(7)).Return(cycle, nil).Times(6)

	amount, err := setup.service.Claim(setup.ctx, 7, target.ID)

	assert.Zero(t, amount)
	assert.ErrorIs(t, err, parlay.ErrNotEligible)
}

// TestClaim_Unresolved tests claims against an unresolved cycle
func TestClaim_Unresolved(t *testing.T) {
	setup := setupTestSlipService(t)
	defer setup.cleanup()

	setup.mockDirectory.EXPECT().GetCycleState(uint64(7)).Return(models.CycleEnded, nil)

	amount, err := setup.service.Claim(setup.ctx, 7, uuid.New())

	assert.Zero(t, amount)
	assert.ErrorIs(t, err, parlay.ErrCycleUnresolved)
}
