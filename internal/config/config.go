package config

import "time"

// Config holds all business configuration: fee schedules, per-currency limit
// tables, fraud thresholds, PIN policy and code lifetimes. It is built once at
// startup and passed by value to constructors; nothing mutates it afterwards.
type Config struct {
	Fees  FeesConfig
	Fraud FraudConfig
	Pin   PinConfig
	Codes CodesConfig

	// Limits maps a currency code to its limit table; currencies not listed
	// fall back to DefaultLimits.
	Limits        map[string]CurrencyLimits
	DefaultLimits CurrencyLimits

	// ExternalCallTimeout bounds gRPC calls to the exchange-rate service.
	ExternalCallTimeout time.Duration

	// SweepInterval is how often expired codes and escrows are swept.
	SweepInterval time.Duration

	// RateCacheTTL is how long exchange rates stay valid in Redis.
	RateCacheTTL time.Duration
}

// FeesConfig carries every basis-point schedule the platform charges.
type FeesConfig struct {
	TransferBasisPoints uint64
	SpreadBasisPoints   uint64
	Deposit             AgentFeeConfig
	Withdrawal          AgentFeeConfig
}

// AgentFeeConfig describes how an agent-mediated operation is priced:
// the agent's commission, the platform's operation fee, and the platform's
// percentage cut of the agent's commission.
type AgentFeeConfig struct {
	AgentCommissionBasisPoints      uint64
	PlatformOperationFeeBasisPoints uint64
	PlatformCommissionCutPercent    uint64
}

// CurrencyLimits is the per-currency limit table. The daily caps are rolling
// 24-hour cumulative limits on the user's outgoing transactions.
type CurrencyLimits struct {
	MinDeposit           int64
	MaxDeposit           int64
	MinWithdrawal        int64
	MaxWithdrawal        int64
	MaxTransaction       int64
	MaxDailyTransactions int
	MaxDailyAmount       int64
}

// FraudConfig holds the scoring thresholds of the fraud engine.
type FraudConfig struct {
	SuspiciousAmountThreshold int64
	MaxTransactionsPerHour    int
	BurstThreshold            int
	BurstWindow               time.Duration
	NewUserWindow             time.Duration
	NewUserAmountFloor        int64
	SameAmountRepeatThreshold int
}

// PinConfig holds the PIN format and lockout policy.
type PinConfig struct {
	MinLength       int
	MaxLength       int
	MaxAttempts     int
	LockoutDuration time.Duration
}

// CodesConfig holds the code prefixes and lifetimes.
type CodesConfig struct {
	DepositPrefix    string
	WithdrawalPrefix string
	EscrowPrefix     string
	CodeTTL          time.Duration
	EscrowTTL        time.Duration
}

// Default returns the production defaults. Limit tables follow the launch
// currencies; anything unlisted uses DefaultLimits.
func Default() Config {
	return Config{
		Fees: FeesConfig{
			TransferBasisPoints: 50,
			SpreadBasisPoints:   50,
			Deposit: AgentFeeConfig{
				AgentCommissionBasisPoints:      1000,
				PlatformOperationFeeBasisPoints: 50,
				PlatformCommissionCutPercent:    10,
			},
			Withdrawal: AgentFeeConfig{
				AgentCommissionBasisPoints:      1000,
				PlatformOperationFeeBasisPoints: 50,
				PlatformCommissionCutPercent:    10,
			},
		},
		Fraud: FraudConfig{
			SuspiciousAmountThreshold: 5_000_000,
			MaxTransactionsPerHour:    50,
			BurstThreshold:            10,
			BurstWindow:               5 * time.Minute,
			NewUserWindow:             time.Hour,
			NewUserAmountFloor:        1_000_000,
			SameAmountRepeatThreshold: 5,
		},
		Pin: PinConfig{
			MinLength:       4,
			MaxLength:       6,
			MaxAttempts:     3,
			LockoutDuration: 30 * time.Minute,
		},
		Codes: CodesConfig{
			DepositPrefix:    "DEP",
			WithdrawalPrefix: "WTH",
			EscrowPrefix:     "ESC",
			CodeTTL:          time.Hour,
			EscrowTTL:        24 * time.Hour,
		},
		Limits: map[string]CurrencyLimits{
			"KES": {MinDeposit: 10_000, MaxDeposit: 1_000_000, MinWithdrawal: 10_000, MaxWithdrawal: 500_000, MaxTransaction: 10_000_000, MaxDailyTransactions: 100, MaxDailyAmount: 20_000_000},
			"UGX": {MinDeposit: 10_000, MaxDeposit: 10_000_000, MinWithdrawal: 10_000, MaxWithdrawal: 5_000_000, MaxTransaction: 10_000_000, MaxDailyTransactions: 100, MaxDailyAmount: 50_000_000},
			"NGN": {MinDeposit: 10_000, MaxDeposit: 1_000_000, MinWithdrawal: 10_000, MaxWithdrawal: 500_000, MaxTransaction: 10_000_000, MaxDailyTransactions: 100, MaxDailyAmount: 20_000_000},
		},
		DefaultLimits: CurrencyLimits{
			MinDeposit:           10_000,
			MaxDeposit:           1_000_000,
			MinWithdrawal:        10_000,
			MaxWithdrawal:        500_000,
			MaxTransaction:       10_000_000,
			MaxDailyTransactions: 100,
			MaxDailyAmount:       20_000_000,
		},
		ExternalCallTimeout: 5 * time.Second,
		SweepInterval:       time.Minute,
		RateCacheTTL:        time.Minute,
	}
}

// LimitsFor returns the limit table for a currency, falling back to the
// default table when the currency is unlisted.
func (c Config) LimitsFor(currency string) CurrencyLimits {
	if limits, ok := c.Limits[currency]; ok {
		return limits
	}
	return c.DefaultLimits
}
