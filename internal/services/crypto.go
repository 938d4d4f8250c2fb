package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/fees"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// RateSource fetches live asset prices.
type RateSource interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// RateCache caches asset prices.
type RateCache interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	SetRate(ctx context.Context, from, to string, rate decimal.Decimal) error
}

// smallestUnits returns how many smallest units make one whole asset.
func smallestUnits(asset models.CryptoAsset) decimal.Decimal {
	switch asset {
	case models.AssetBTC:
		return decimal.New(1, 8) // satoshis
	default:
		return decimal.New(1, 6) // micro USDC
	}
}

// CryptoTradeResult reports a completed buy, sell or swap.
type CryptoTradeResult struct {
	DebitedAmount  int64
	CreditedAmount int64
	Spread         int64
	Rate           decimal.Decimal
}

// CryptoService runs buy, sell, swap and send. Rates come from the cache
// first and the gRPC rate service on a miss; conversion math uses decimals
// and floors the final smallest-unit amount.
type CryptoService struct {
	ledger    LedgerWriter
	balances  LedgerReader
	txns      TransactionWriter
	pins      PinVerifier
	fraud     FraudChecker
	users     UserReader
	rates     RateSource
	cache     RateCache
	locks     *UserLocks
	publisher *TransactionPublisher
	cfg       config.FeesConfig
}

func NewCryptoService(
	ledger LedgerWriter,
	balances LedgerReader,
	txns TransactionWriter,
	pins PinVerifier,
	fraud FraudChecker,
	users UserReader,
	rates RateSource,
	cache RateCache,
	locks *UserLocks,
	publisher *TransactionPublisher,
	cfg config.FeesConfig,
) *CryptoService {
	return &CryptoService{
		ledger:    ledger,
		balances:  balances,
		txns:      txns,
		pins:      pins,
		fraud:     fraud,
		users:     users,
		rates:     rates,
		cache:     cache,
		locks:     locks,
		publisher: publisher,
		cfg:       cfg,
	}
}

// getRate resolves a price, preferring the cache.
func (s *CryptoService) getRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if s.cache != nil {
		if rate, err := s.cache.GetRate(ctx, from, to); err == nil && rate.IsPositive() {
			return rate, nil
		}
	}

	rate, err := s.rates.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, errs.Internal(errors.New("rate service returned a non-positive rate"))
	}

	if s.cache != nil {
		if err := s.cache.SetRate(ctx, from, to, rate); err != nil {
			logger.Log.Warnw("failed to cache rate", "from", from, "to", to, "error", err)
		}
	}
	return rate, nil
}

// Buy converts fiat into crypto at the current rate.
func (s *CryptoService) Buy(ctx context.Context, userID string, asset models.CryptoAsset, fiatAmount int64, currency, pin string) (*CryptoTradeResult, error) {
	if fiatAmount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	verdict, err := s.fraud.Assess(ctx, userID, fiatAmount, currency, models.TxBuyCrypto)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if verdict.ShouldBlock {
		return nil, errs.Blocked(verdict.Warnings)
	}

	// Rate is currency minor units per whole asset.
	rate, err := s.getRate(ctx, string(asset), currency)
	if err != nil {
		return nil, err
	}

	cryptoAmount := decimal.NewFromInt(fiatAmount).
		Div(rate).
		Mul(smallestUnits(asset)).
		Floor().IntPart()
	if cryptoAmount <= 0 {
		return nil, errs.InvalidInput("Amount too small to buy any %s", asset)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if _, err := s.ledger.DebitFiat(ctx, userID, currency, fiatAmount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetFiatBalance(ctx, userID, currency)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, fiatAmount)
		}
		return nil, errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, userID, asset, cryptoAmount); err != nil {
		if _, refundErr := s.ledger.CreditFiat(ctx, userID, currency, fiatAmount); refundErr != nil {
			logger.Log.Errorw("failed to reverse fiat debit after crypto credit failure",
				"user_id", userID, "amount", fiatAmount, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	if err := s.logTrade(ctx, models.TxBuyCrypto, userID, fiatAmount, currency); err != nil {
		return nil, err
	}

	return &CryptoTradeResult{DebitedAmount: fiatAmount, CreditedAmount: cryptoAmount, Rate: rate}, nil
}

// Sell converts crypto back into fiat at the current rate.
func (s *CryptoService) Sell(ctx context.Context, userID string, asset models.CryptoAsset, cryptoAmount int64, currency, pin string) (*CryptoTradeResult, error) {
	if cryptoAmount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	rate, err := s.getRate(ctx, string(asset), currency)
	if err != nil {
		return nil, err
	}

	fiatAmount := decimal.NewFromInt(cryptoAmount).
		Div(smallestUnits(asset)).
		Mul(rate).
		Floor().IntPart()
	if fiatAmount <= 0 {
		return nil, errs.InvalidInput("Amount too small to sell")
	}

	verdict, err := s.fraud.Assess(ctx, userID, fiatAmount, currency, models.TxSellCrypto)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if verdict.ShouldBlock {
		return nil, errs.Blocked(verdict.Warnings)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if _, err := s.ledger.DebitCrypto(ctx, userID, asset, cryptoAmount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetCryptoBalance(ctx, userID, asset)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, cryptoAmount)
		}
		return nil, errs.Internal(err)
	}

	if _, err := s.ledger.CreditFiat(ctx, userID, currency, fiatAmount); err != nil {
		if _, refundErr := s.ledger.CreditCrypto(ctx, userID, asset, cryptoAmount); refundErr != nil {
			logger.Log.Errorw("failed to reverse crypto debit after fiat credit failure",
				"user_id", userID, "amount", cryptoAmount, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	if err := s.logTrade(ctx, models.TxSellCrypto, userID, fiatAmount, currency); err != nil {
		return nil, err
	}

	return &CryptoTradeResult{DebitedAmount: cryptoAmount, CreditedAmount: fiatAmount, Rate: rate}, nil
}

// Swap converts one crypto asset into the other. The spread comes off the
// input before conversion; the output must clear the caller's minimum.
func (s *CryptoService) Swap(ctx context.Context, userID string, fromAsset, toAsset models.CryptoAsset, amount, minOut int64, pin string) (*CryptoTradeResult, error) {
	if fromAsset == toAsset {
		return nil, errs.InvalidInput("Cannot swap the same token")
	}
	if amount <= 0 {
		return nil, errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}

	spread, err := fees.Fee(amount, s.cfg.SpreadBasisPoints)
	if err != nil {
		return nil, err
	}
	net := amount - spread

	// Rate is whole units of toAsset per whole unit of fromAsset.
	rate, err := s.getRate(ctx, string(fromAsset), string(toAsset))
	if err != nil {
		return nil, err
	}

	out := decimal.NewFromInt(net).
		Div(smallestUnits(fromAsset)).
		Mul(rate).
		Mul(smallestUnits(toAsset)).
		Floor().IntPart()
	if out < minOut {
		return nil, errs.LimitViolation("Slippage exceeded: output %d is below minimum %d", out, minOut)
	}
	if out <= 0 {
		return nil, errs.InvalidInput("Amount too small to swap")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if _, err := s.ledger.DebitCrypto(ctx, userID, fromAsset, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetCryptoBalance(ctx, userID, fromAsset)
			if readErr != nil {
				return nil, errs.Internal(readErr)
			}
			return nil, errs.InsufficientBalance(have, amount)
		}
		return nil, errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, userID, toAsset, out); err != nil {
		if _, refundErr := s.ledger.CreditCrypto(ctx, userID, fromAsset, amount); refundErr != nil {
			logger.Log.Errorw("failed to reverse swap debit after credit failure",
				"user_id", userID, "amount", amount, "error", refundErr)
		}
		return nil, errs.Internal(err)
	}

	if err := s.logTrade(ctx, models.TxSwapCrypto, userID, amount, string(fromAsset)); err != nil {
		return nil, err
	}

	return &CryptoTradeResult{DebitedAmount: amount, CreditedAmount: out, Spread: spread, Rate: rate}, nil
}

// Send moves crypto between users with no fee.
func (s *CryptoService) Send(ctx context.Context, fromUser, toUser string, asset models.CryptoAsset, amount int64, pin string) error {
	if fromUser == toUser {
		return errs.InvalidInput("Cannot transfer to self")
	}
	if amount <= 0 {
		return errs.InvalidInput("Amount must be positive")
	}

	if err := s.pins.Verify(ctx, fromUser, pin); err != nil {
		return err
	}

	recipient, err := s.users.GetByID(ctx, toUser)
	if err != nil {
		return errs.Internal(err)
	}
	if recipient == nil {
		return errs.NotFound("Recipient not found")
	}

	unlock := s.locks.LockPair(fromUser, toUser)
	defer unlock()

	if _, err := s.ledger.DebitCrypto(ctx, fromUser, asset, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			have, readErr := s.balances.GetCryptoBalance(ctx, fromUser, asset)
			if readErr != nil {
				return errs.Internal(readErr)
			}
			return errs.InsufficientBalance(have, amount)
		}
		return errs.Internal(err)
	}

	if _, err := s.ledger.CreditCrypto(ctx, toUser, asset, amount); err != nil {
		if _, refundErr := s.ledger.CreditCrypto(ctx, fromUser, asset, amount); refundErr != nil {
			logger.Log.Errorw("failed to reverse crypto debit after credit failure",
				"from", fromUser, "amount", amount, "error", refundErr)
		}
		return errs.Internal(err)
	}

	now := time.Now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        models.TxTransferCrypto,
		FromUser:    &fromUser,
		ToUser:      &toUser,
		Amount:      amount,
		Currency:    string(asset),
		Status:      models.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if err := s.txns.Save(ctx, &txn); err != nil {
		return errs.Internal(err)
	}

	s.publisher.Publish(ctx, txn)
	return nil
}

func (s *CryptoService) logTrade(ctx context.Context, txType models.TransactionType, userID string, amount int64, tag string) error {
	now := time.Now()
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		FromUser:    &userID,
		Amount:      amount,
		Currency:    tag,
		Status:      models.TxStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if err := s.txns.Save(ctx, &txn); err != nil {
		return errs.Internal(err)
	}
	s.publisher.Publish(ctx, txn)
	return nil
}
