package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
	"github.com/cypherlabdev/parlay-slip-service/internal/service"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

// SlipHandler handles HTTP requests for parlay slips
type SlipHandler struct {
	service *service.SlipService
	logger  zerolog.Logger
}

// NewSlipHandler creates a new slip HTTP handler
func NewSlipHandler(service *service.SlipService, logger zerolog.Logger) *SlipHandler {
	return &SlipHandler{
		service: service,
		logger:  logger.With().Str("component", "slip_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *SlipHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/cycles/:cycle_id/slips            - Submit a slip
	// GET  /api/v1/cycles/:cycle_id/slips/:slip_id   - Get a slip
	// POST /api/v1/cycles/:cycle_id/slips/:slip_id/claim - Claim a prize
	// GET  /api/v1/cycles/:cycle_id/leaderboard      - Get the leaderboard
	mux.HandleFunc("/api/v1/cycles/", h.handleCycles)
}

// handleCycles dispatches on the path below /api/v1/cycles/
func (h *SlipHandler) handleCycles(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/cycles/")
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")

	if len(parts) < 2 || parts[0] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/cycles/:cycle_id/...")
		return
	}

	cycleID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "cycle_id must be a positive integer")
		return
	}

	switch {
	case len(parts) == 2 && parts[1] == "leaderboard" && r.Method == http.MethodGet:
		h.handleLeaderboard(w, r, cycleID)
	case len(parts) == 2 && parts[1] == "slips" && r.Method == http.MethodPost:
		h.handleSubmitSlip(w, r, cycleID)
	case len(parts) == 3 && parts[1] == "slips" && r.Method == http.MethodGet:
		h.handleGetSlip(w, r, cycleID, parts[2])
	case len(parts) == 4 && parts[1] == "slips" && parts[3] == "claim" && r.Method == http.MethodPost:
		h.handleClaim(w, r, cycleID, parts[2])
	default:
		h.errorResponse(w, http.StatusNotFound, "unknown route")
	}
}

// SubmitSlipRequest is the submission request body
type SubmitSlipRequest struct {
	PlayerID string       `json:"player_id"`
	Legs     []models.Leg `json:"legs"`
}

// handleSubmitSlip handles POST /api/v1/cycles/:cycle_id/slips
func (h *SlipHandler) handleSubmitSlip(w http.ResponseWriter, r *http.Request, cycleID uint64) {
	var req SubmitSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		h.errorResponse(w, http.StatusBadRequest, "player_id is required")
		return
	}

	slip, err := h.service.SubmitSlip(r.Context(), req.PlayerID, cycleID, req.Legs)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Uint64("cycle_id", cycleID).
			Str("player_id", req.PlayerID).
			Msg("slip rejected")
		h.errorFromDomain(w, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, ToSlipResponse(slip))
}

// handleGetSlip handles GET /api/v1/cycles/:cycle_id/slips/:slip_id
func (h *SlipHandler) handleGetSlip(w http.ResponseWriter, r *http.Request, cycleID uint64, rawSlipID string) {
	slipID, err := uuid.Parse(rawSlipID)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "slip_id must be a UUID")
		return
	}

	slip, err := h.service.GetSlip(r.Context(), cycleID, slipID)
	if err != nil {
		h.errorFromDomain(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToSlipResponse(slip))
}

// handleLeaderboard handles GET /api/v1/cycles/:cycle_id/leaderboard
func (h *SlipHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request, cycleID uint64) {
	entries, err := h.service.Leaderboard(r.Context(), cycleID)
	if err != nil {
		h.errorFromDomain(w, err)
		return
	}

	response := make([]*LeaderboardEntryResponse, 0, len(entries))
	for i := range entries {
		response = append(response, ToLeaderboardEntryResponse(&entries[i]))
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"cycle_id": cycleID,
		"count":    len(response),
		"entries":  response,
	})
}

// handleClaim handles POST /api/v1/cycles/:cycle_id/slips/:slip_id/claim
func (h *SlipHandler) handleClaim(w http.ResponseWriter, r *http.Request, cycleID uint64, rawSlipID string) {
	slipID, err := uuid.Parse(rawSlipID)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "slip_id must be a UUID")
		return
	}

	amount, err := h.service.Claim(r.Context(), cycleID, slipID)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Uint64("cycle_id", cycleID).
			Str("slip_id", slipID.String()).
			Msg("claim rejected")
		h.errorFromDomain(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"slip_id": slipID,
		"amount":  amount,
		"payout":  models.FormatFixedPoint(amount),
	})
}

// errorFromDomain maps domain errors to HTTP status codes
func (h *SlipHandler) errorFromDomain(w http.ResponseWriter, err error) {
	var verr *parlay.ValidationError
	switch {
	case errors.As(err, &verr):
		h.jsonResponse(w, http.StatusBadRequest, map[string]string{
			"error": verr.Error(),
			"code":  string(verr.Code),
		})
	case errors.Is(err, parlay.ErrBettingClosed):
		h.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, parlay.ErrCycleNotActive):
		h.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, parlay.ErrCycleUnresolved):
		h.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, parlay.ErrAlreadyClaimed):
		h.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, parlay.ErrNotEligible):
		h.errorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, parlay.ErrInsufficientFund):
		h.errorResponse(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, parlay.ErrSlipNotFound):
		h.errorResponse(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("request failed")
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

// jsonResponse writes a JSON response
func (h *SlipHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *SlipHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// SlipResponse represents the API response for a slip
type SlipResponse struct {
	ID           string        `json:"id"`
	PlayerID     string        `json:"player_id"`
	CycleID      uint64        `json:"cycle_id"`
	PlacedAt     string        `json:"placed_at"`
	Legs         []LegResponse `json:"legs"`
	Score        uint64        `json:"score"`
	Multiplier   string        `json:"multiplier"`
	CorrectCount int           `json:"correct_count"`
	Evaluated    bool          `json:"evaluated"`
	Claimed      bool          `json:"claimed"`
}

// LegResponse represents one leg in a slip response
type LegResponse struct {
	MatchID     uint64 `json:"match_id"`
	BetType     string `json:"bet_type"`
	Selection   string `json:"selection"`
	SelectedOdd string `json:"selected_odd"`
}

// LeaderboardEntryResponse represents one leaderboard row
type LeaderboardEntryResponse struct {
	Rank         int    `json:"rank"`
	PlayerID     string `json:"player_id"`
	SlipID       string `json:"slip_id"`
	Score        uint64 `json:"score"`
	Multiplier   string `json:"multiplier"`
	CorrectCount int    `json:"correct_count"`
	PlacedAt     string `json:"placed_at"`
}

// ToSlipResponse converts a Slip to API response format
func ToSlipResponse(slip *models.Slip) *SlipResponse {
	legs := make([]LegResponse, 0, len(slip.Legs))
	for _, leg := range slip.Legs {
		legs = append(legs, LegResponse{
			MatchID:     leg.MatchID,
			BetType:     string(leg.BetType),
			Selection:   string(leg.Selection),
			SelectedOdd: models.FormatFixedPoint(uint64(leg.SelectedOdd)),
		})
	}
	return &SlipResponse{
		ID:           slip.ID.String(),
		PlayerID:     slip.PlayerID,
		CycleID:      slip.CycleID,
		PlacedAt:     slip.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		Legs:         legs,
		Score:        slip.Score,
		Multiplier:   models.FormatFixedPoint(slip.Score),
		CorrectCount: slip.CorrectCount,
		Evaluated:    slip.Evaluated,
		Claimed:      slip.Claimed,
	}
}

// ToLeaderboardEntryResponse converts a LeaderboardEntry to API response format
func ToLeaderboardEntryResponse(entry *models.LeaderboardEntry) *LeaderboardEntryResponse {
	return &LeaderboardEntryResponse{
		Rank:         entry.Rank,
		PlayerID:     entry.PlayerID,
		SlipID:       entry.SlipID.String(),
		Score:        entry.Score,
		Multiplier:   models.FormatFixedPoint(entry.Score),
		CorrectCount: entry.CorrectCount,
		PlacedAt:     entry.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
