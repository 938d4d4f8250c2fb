// Package facades wraps external services behind small interfaces the
// services layer consumes.
package facades

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// RatesGRPCFacade fetches asset prices from the rate service over gRPC. Every
// call carries a deadline so a hung rate service fails the caller's operation
// instead of stalling it.
type RatesGRPCFacade struct {
	client  pb.ExchangeServiceClient
	timeout time.Duration
}

// NewRatesGRPCFacade creates a new facade with a gRPC client.
func NewRatesGRPCFacade(client pb.ExchangeServiceClient, timeout time.Duration) *RatesGRPCFacade {
	return &RatesGRPCFacade{client: client, timeout: timeout}
}

// GetRates fetches all known rates as map[pair]rate.
func (f *RatesGRPCFacade) GetRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch rates via gRPC", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.Timeout("rates")
		}
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(resp.Rates))
	for pair, rate := range resp.Rates {
		rates[pair] = decimal.NewFromFloat32(rate)
	}

	return rates, nil
}

// GetRate fetches the rate between an asset and a currency.
func (f *RatesGRPCFacade) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req := &pb.CurrencyRequest{
		FromCurrency: from,
		ToCurrency:   to,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch rate via gRPC",
			"from", from, "to", to, "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return decimal.Zero, errs.Timeout("rates")
		}
		return decimal.Zero, err
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
