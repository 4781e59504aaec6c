package service

// Refresh outcomes recorded by BrokerMetrics.
const (
	RefreshSucceeded = "succeeded"
	RefreshRevoked   = "revoked"
	RefreshFailed    = "failed"
	RefreshReused    = "reused"
)

// BrokerMetrics records the session and runner counters exposed on /metrics.
type BrokerMetrics interface {
	RefreshObserved(outcome string)
	StoreFailed(op string)
	OperationObserved(action, outcome string)
}
