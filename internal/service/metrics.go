package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	slipsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlay_slips_submitted_total",
		Help: "Number of slips accepted by the ledger.",
	})

	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parlay_validation_failures_total",
		Help: "Slip validation failures by reason code.",
	}, []string{"code"})

	claimsPaid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlay_claims_paid_total",
		Help: "Number of prize claims paid out.",
	})

	claimsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parlay_claims_rejected_total",
		Help: "Rejected prize claims by reason.",
	}, []string{"reason"})
)
