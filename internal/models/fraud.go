package models

// RiskLevel buckets a risk score for reporting.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskVerdict is the fraud engine's assessment of a candidate transaction.
// RequiresManualReview is the OR of per-signal flags, not derived from the
// score alone: a hard breach of the maximum always forces review.
type RiskVerdict struct {
	RiskScore            int       `json:"risk_score"`
	RiskLevel            RiskLevel `json:"risk_level"`
	ShouldBlock          bool      `json:"should_block"`
	IsSuspicious         bool      `json:"is_suspicious"`
	RequiresManualReview bool      `json:"requires_manual_review"`
	Warnings             []string  `json:"warnings"`
}

// LevelForScore buckets a score: >=80 high, >=50 medium, >=20 low, else none.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskHigh
	case score >= 50:
		return RiskMedium
	case score >= 20:
		return RiskLow
	default:
		return RiskNone
	}
}
