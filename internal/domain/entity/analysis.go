package entity

import "time"

// WalletAnalysis bundles everything one request produced: the reconciled
// snapshot (nil when every balance source failed), the market context the
// engine saw, and the recommendation list. All of it is request-scoped.
type WalletAnalysis struct {
	Address         string           `json:"address"`
	Snapshot        *WalletSnapshot  `json:"snapshot,omitempty"`
	Market          MarketContext    `json:"market"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generatedAt"`
}

// Failed reports whether the analysis carries no snapshot, i.e. the balance
// fetch exhausted every source.
func (a *WalletAnalysis) Failed() bool {
	return a == nil || a.Snapshot == nil
}
