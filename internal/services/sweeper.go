package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// ExpiredWithdrawalLister feeds the sweeper pending withdrawals past their
// deadline.
type ExpiredWithdrawalLister interface {
	ListExpiredPending(ctx context.Context, limit int) ([]models.WithdrawalRequest, error)
}

// ExpiredEscrowLister feeds the sweeper pending escrows past their deadline.
type ExpiredEscrowLister interface {
	ListExpiredPending(ctx context.Context, limit int) ([]models.Escrow, error)
}

// SweepSummary reports one sweep pass.
type SweepSummary struct {
	Processed        int              `json:"processed"`
	Refunded         int              `json:"refunded"`
	RefundedPerAsset map[string]int64 `json:"refunded_per_asset"`
}

const sweepBatchSize = 500

// Sweeper expires overdue withdrawal holds and escrows and refunds them. A
// pass over already-terminal entries is a no-op: the guarded status flip
// skips anything another path finalized first.
type Sweeper struct {
	withdrawals       WithdrawalRequestWriter
	expiredWithdrawal ExpiredWithdrawalLister
	escrows           EscrowWriter
	expiredEscrow     ExpiredEscrowLister
	ledger            LedgerWriter
	locks             *UserLocks
}

func NewSweeper(
	withdrawals WithdrawalRequestWriter,
	expiredWithdrawal ExpiredWithdrawalLister,
	escrows EscrowWriter,
	expiredEscrow ExpiredEscrowLister,
	ledger LedgerWriter,
	locks *UserLocks,
) *Sweeper {
	return &Sweeper{
		withdrawals:       withdrawals,
		expiredWithdrawal: expiredWithdrawal,
		escrows:           escrows,
		expiredEscrow:     expiredEscrow,
		ledger:            ledger,
		locks:             locks,
	}
}

// SweepExpired processes all eligible entries in one pass.
func (s *Sweeper) SweepExpired(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{RefundedPerAsset: make(map[string]int64)}

	overdue, err := s.expiredWithdrawal.ListExpiredPending(ctx, sweepBatchSize)
	if err != nil {
		return summary, errs.Internal(err)
	}
	for _, req := range overdue {
		summary.Processed++
		refunded, err := s.expireWithdrawal(ctx, req)
		if err != nil {
			return summary, err
		}
		if refunded > 0 {
			summary.Refunded++
			summary.RefundedPerAsset[req.Currency] += refunded
		}
	}

	escrows, err := s.expiredEscrow.ListExpiredPending(ctx, sweepBatchSize)
	if err != nil {
		return summary, errs.Internal(err)
	}
	for _, escrow := range escrows {
		summary.Processed++
		refunded, err := s.expireEscrow(ctx, escrow)
		if err != nil {
			return summary, err
		}
		if refunded > 0 {
			summary.Refunded++
			summary.RefundedPerAsset[string(escrow.Asset)] += refunded
		}
	}

	if summary.Processed > 0 {
		logger.Log.Infow("sweep completed",
			"processed", summary.Processed, "refunded", summary.Refunded)
	}

	return summary, nil
}

func (s *Sweeper) expireWithdrawal(ctx context.Context, req models.WithdrawalRequest) (int64, error) {
	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	expired, err := s.withdrawals.UpdateStatus(ctx, req.Code, models.StatusExpired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errs.Internal(err)
	}

	hold := expired.Amount + expired.TotalFees
	if _, err := s.ledger.CreditFiat(ctx, expired.UserID, expired.Currency, hold); err != nil {
		// Put the request back so the next pass retries the refund; a row
		// left expired would never be listed again.
		if reopenErr := s.withdrawals.Reopen(ctx, req.Code); reopenErr != nil {
			logger.Log.Errorw("failed to reopen withdrawal after refund failure",
				"code", req.Code, "error", reopenErr)
		}
		return 0, errs.Internal(err)
	}
	return hold, nil
}

func (s *Sweeper) expireEscrow(ctx context.Context, escrow models.Escrow) (int64, error) {
	unlock := s.locks.Lock(escrow.UserID)
	defer unlock()

	expired, err := s.escrows.UpdateStatus(ctx, escrow.Code, models.StatusExpired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, expired.UserID, expired.Asset, expired.Amount); err != nil {
		if reopenErr := s.escrows.Reopen(ctx, escrow.Code); reopenErr != nil {
			logger.Log.Errorw("failed to reopen escrow after refund failure",
				"code", escrow.Code, "error", reopenErr)
		}
		return 0, errs.Internal(err)
	}
	return expired.Amount, nil
}

// Run sweeps on the given interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepExpired(ctx); err != nil {
				logger.Log.Errorw("sweep failed", "error", err)
			}
		}
	}
}
