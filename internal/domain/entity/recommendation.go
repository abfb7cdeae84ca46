package entity

// RecommendationType tags what a recommendation is about.
type RecommendationType string

const (
	RecommendationStaking         RecommendationType = "staking"
	RecommendationDiversification RecommendationType = "diversification"
	RecommendationKnowledgeAdvice RecommendationType = "knowledge_advice"
	RecommendationDefi            RecommendationType = "defi"
	RecommendationMarketTiming    RecommendationType = "market_timing"
	RecommendationRiskManagement  RecommendationType = "risk_management"
	RecommendationError           RecommendationType = "error"
)

// RecommendationPriority orders recommendations for display only; emission
// order is insertion order and is never re-sorted by priority.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation is one advisory record. Recommendations have no identity
// and no persistence; they are produced fresh for every request.
type Recommendation struct {
	Type                  RecommendationType     `json:"type"`
	Priority              RecommendationPriority `json:"priority"`
	Action                string                 `json:"action"`
	Description           string                 `json:"description"`
	Reasoning             string                 `json:"reasoning"`
	EstimatedAnnualReturn string                 `json:"estimatedAnnualReturn,omitempty"`
}
