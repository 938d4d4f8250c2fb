// Package fees implements the integer basis-point fee math shared by every
// money-moving operation. All calculations floor: fee(a, b) = a*b/10000
// rounded down, so fee(a, b) <= a for b <= 10000.
package fees

import (
	"math"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
)

// Fee returns amount*basisPoints/10000, floored. Fails on basis points above
// 10000 (100%) and on multiplication overflow.
func Fee(amount int64, basisPoints uint64) (int64, error) {
	if basisPoints > 10_000 {
		return 0, errs.InvalidInput("Fee basis points cannot exceed 10000 (100%%)")
	}
	if amount < 0 {
		return 0, errs.InvalidInput("Fee amount cannot be negative")
	}
	if basisPoints != 0 && amount > math.MaxInt64/int64(basisPoints) {
		return 0, errs.Overflow("Fee calculation would overflow")
	}
	return amount * int64(basisPoints) / 10_000, nil
}

// DepositFees is the full commission breakdown for an agent-mediated cash-in.
// The agent charges the user a commission, the platform takes an operation
// fee plus a percentage cut of the agent's commission, and the user's balance
// is credited with the net.
type DepositFees struct {
	AgentCommission      int64
	AgentKeeps           int64
	PlatformFromCommission int64
	PlatformOperationFee int64
	TotalPlatformRevenue int64
	NetToUser            int64
}

// CalculateDeposit computes the deposit commission split for amount.
func CalculateDeposit(amount int64, cfg config.AgentFeeConfig) (DepositFees, error) {
	commission, err := Fee(amount, cfg.AgentCommissionBasisPoints)
	if err != nil {
		return DepositFees{}, err
	}
	operationFee, err := Fee(amount, cfg.PlatformOperationFeeBasisPoints)
	if err != nil {
		return DepositFees{}, err
	}

	platformCut := commission * int64(cfg.PlatformCommissionCutPercent) / 100

	return DepositFees{
		AgentCommission:        commission,
		AgentKeeps:             commission - platformCut,
		PlatformFromCommission: platformCut,
		PlatformOperationFee:   operationFee,
		TotalPlatformRevenue:   operationFee + platformCut,
		NetToUser:              amount - commission,
	}, nil
}

// WithdrawalFees is the breakdown for an agent-mediated cash-out. The user
// pays amount + TotalFees up front as a hold; NetToUser is the cash the agent
// hands over.
type WithdrawalFees struct {
	AgentFee             int64
	AgentKeeps           int64
	PlatformFromFee      int64
	PlatformOperationFee int64
	TotalPlatformRevenue int64
	TotalFees            int64
	NetToUser            int64
}

// CalculateWithdrawal computes the withdrawal fee split for amount.
func CalculateWithdrawal(amount int64, cfg config.AgentFeeConfig) (WithdrawalFees, error) {
	agentFee, err := Fee(amount, cfg.AgentCommissionBasisPoints)
	if err != nil {
		return WithdrawalFees{}, err
	}
	operationFee, err := Fee(amount, cfg.PlatformOperationFeeBasisPoints)
	if err != nil {
		return WithdrawalFees{}, err
	}

	platformCut := agentFee * int64(cfg.PlatformCommissionCutPercent) / 100

	return WithdrawalFees{
		AgentFee:             agentFee,
		AgentKeeps:           agentFee - platformCut,
		PlatformFromFee:      platformCut,
		PlatformOperationFee: operationFee,
		TotalPlatformRevenue: operationFee + platformCut,
		TotalFees:            agentFee + operationFee,
		NetToUser:            amount - (agentFee + operationFee),
	}, nil
}
