package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// TransactionCounter reads velocity and daily-cap evidence from the
// transaction log.
type TransactionCounter interface {
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
	SumSince(ctx context.Context, userID string, since time.Time) (int64, error)
	CountSameAmountSince(ctx context.Context, userID string, amount int64, since time.Time) (int, error)
}

// UserReader looks up users.
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// FraudService scores candidate transactions before the orchestrator moves
// money. Scoring is additive and deterministic; the same inputs always
// produce the same verdict.
type FraudService struct {
	counts TransactionCounter
	users  UserReader
	cfg    config.FraudConfig
	limits func(currency string) config.CurrencyLimits
	now    func() time.Time
}

func NewFraudService(counts TransactionCounter, users UserReader, cfg *config.Config) *FraudService {
	return &FraudService{
		counts: counts,
		users:  users,
		cfg:    cfg.Fraud,
		limits: cfg.LimitsFor,
		now:    time.Now,
	}
}

// Assess produces the risk verdict for one candidate transaction. A breach
// of the per-currency maximum or of a daily cumulative cap short-circuits to
// a blocking verdict; the velocity signals only add to the score.
func (s *FraudService) Assess(ctx context.Context, userID string, amount int64, currency string, op models.TransactionType) (models.RiskVerdict, error) {
	verdict := models.RiskVerdict{Warnings: []string{}}

	limits := s.limits(currency)
	if amount > limits.MaxTransaction {
		verdict.RiskScore = 100
		verdict.RiskLevel = models.RiskHigh
		verdict.ShouldBlock = true
		verdict.IsSuspicious = true
		verdict.RequiresManualReview = true
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Amount %d exceeds maximum %d for %s", amount, limits.MaxTransaction, currency))
		logger.Log.Warnw("transaction blocked", "user_id", userID, "op", op, "amount", amount, "currency", currency)
		return verdict, nil
	}

	now := s.now()
	dayStart := now.Add(-24 * time.Hour)

	daily, err := s.counts.CountSince(ctx, userID, dayStart)
	if err != nil {
		return models.RiskVerdict{}, err
	}
	spent, err := s.counts.SumSince(ctx, userID, dayStart)
	if err != nil {
		return models.RiskVerdict{}, err
	}

	if daily >= limits.MaxDailyTransactions || spent >= limits.MaxDailyAmount {
		verdict.RiskScore = 100
		verdict.RiskLevel = models.RiskHigh
		verdict.ShouldBlock = true
		verdict.IsSuspicious = true
		verdict.RequiresManualReview = true
		if daily >= limits.MaxDailyTransactions {
			verdict.Warnings = append(verdict.Warnings,
				fmt.Sprintf("Daily transaction limit reached: %d >= %d", daily, limits.MaxDailyTransactions))
		}
		if spent >= limits.MaxDailyAmount {
			verdict.Warnings = append(verdict.Warnings,
				fmt.Sprintf("Daily amount limit reached: %d >= %d", spent, limits.MaxDailyAmount))
		}
		logger.Log.Warnw("transaction blocked by daily cap",
			"user_id", userID, "op", op, "daily_count", daily, "daily_spent", spent, "currency", currency)
		return verdict, nil
	}

	approaching := false
	if daily >= limits.MaxDailyTransactions*80/100 {
		approaching = true
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Approaching daily transaction limit: %d/%d", daily, limits.MaxDailyTransactions))
	}
	if spent >= limits.MaxDailyAmount*80/100 {
		approaching = true
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Approaching daily amount limit: %d/%d", spent, limits.MaxDailyAmount))
	}

	score := 0
	review := false

	switch {
	case amount > s.cfg.SuspiciousAmountThreshold:
		score += 70
		review = true
		verdict.Warnings = append(verdict.Warnings, "Unusually large amount")
	case amount > s.cfg.SuspiciousAmountThreshold/2:
		score += 30
	}

	hourly, err := s.counts.CountSince(ctx, userID, now.Add(-time.Hour))
	if err != nil {
		return models.RiskVerdict{}, err
	}
	if hourly >= s.cfg.MaxTransactionsPerHour {
		score += 30
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("High velocity: %d transactions in the last hour", hourly))
	}

	burst, err := s.counts.CountSince(ctx, userID, now.Add(-s.cfg.BurstWindow))
	if err != nil {
		return models.RiskVerdict{}, err
	}
	if burst >= s.cfg.BurstThreshold {
		score += 40
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Burst activity: %d transactions in %s", burst, s.cfg.BurstWindow))
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.RiskVerdict{}, err
	}
	if user != nil && now.Sub(user.CreatedAt) < s.cfg.NewUserWindow && amount > s.cfg.NewUserAmountFloor {
		score += 25
		verdict.Warnings = append(verdict.Warnings, "Large transaction from a new account")
	}

	repeats, err := s.counts.CountSameAmountSince(ctx, userID, amount, now.Add(-time.Hour))
	if err != nil {
		return models.RiskVerdict{}, err
	}
	if repeats >= s.cfg.SameAmountRepeatThreshold {
		score += 20
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Repeated identical amounts: %d in the last hour", repeats))
	}

	if approaching && score < 50 {
		score = 50
	}
	if score > 100 {
		score = 100
	}

	verdict.RiskScore = score
	verdict.RiskLevel = models.LevelForScore(score)
	verdict.IsSuspicious = score >= 50
	verdict.RequiresManualReview = review

	return verdict, nil
}

// CheckRateLimit is a pure counting predicate, independent of the scoring
// function.
func (s *FraudService) CheckRateLimit(ctx context.Context, userID string, window time.Duration, maxCount int) (bool, error) {
	count, err := s.counts.CountSince(ctx, userID, s.now().Add(-window))
	if err != nil {
		return false, err
	}
	return count < maxCount, nil
}
