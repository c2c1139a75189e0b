package parlay

import (
	"crypto/sha256"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// SelectionEncoder maps outcome tokens to fixed-width identifiers. The
// settlement authority recomputes the same encoding independently, so
// the algorithm and canonical token spelling are an external
// compatibility constraint; swap implementations behind this interface
// if the authority ever changes its hash.
type SelectionEncoder interface {
	Encode(sel models.Selection) ([32]byte, error)
	Tokens() []models.Selection
}

// SHA256Encoder encodes a selection as the SHA-256 digest of its
// canonical token spelling.
type SHA256Encoder struct{}

// NewSHA256Encoder creates the default selection encoder.
func NewSHA256Encoder() *SHA256Encoder {
	return &SHA256Encoder{}
}

var canonicalTokens = []models.Selection{
	models.SelectionHomeWin,
	models.SelectionDraw,
	models.SelectionAwayWin,
	models.SelectionOver,
	models.SelectionUnder,
}

// Encode returns the fixed-width identifier for a canonical token.
// An unrecognized token is an input error, never silently defaulted.
func (e *SHA256Encoder) Encode(sel models.Selection) ([32]byte, error) {
	if !isCanonical(sel) {
		return [32]byte{}, &ValidationError{Code: CodeUnknownSelection}
	}
	return sha256.Sum256([]byte(sel)), nil
}

// Tokens returns the five canonical selection tokens.
func (e *SHA256Encoder) Tokens() []models.Selection {
	out := make([]models.Selection, len(canonicalTokens))
	copy(out, canonicalTokens)
	return out
}

func isCanonical(sel models.Selection) bool {
	for _, t := range canonicalTokens {
		if sel == t {
			return true
		}
	}
	return false
}
