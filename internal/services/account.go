package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// UserWriter persists users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
	TouchLastActive(ctx context.Context, userID string) error
}

// UserLookup finds users by their external identifiers.
type UserLookup interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByPhoneOrPrincipal(ctx context.Context, phone, principal *string) (*models.User, error)
}

// TransactionLister reads transaction history.
type TransactionLister interface {
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
}

// AgentBalanceReader reads agent accruals.
type AgentBalanceReader interface {
	GetByAgentID(ctx context.Context, agentID string) ([]models.AgentBalance, error)
}

// PinSetter stores a user's PIN.
type PinSetter interface {
	Set(ctx context.Context, userID, pin string) error
}

// RegisterParams carries everything needed to create a user.
type RegisterParams struct {
	UserType          models.UserType
	PhoneNumber       *string
	PrincipalID       *string
	FirstName         string
	LastName          string
	Email             string
	PreferredCurrency string
	Pin               string
}

// AccountService covers registration, login and the read-side queries:
// balances, history, agent accruals.
type AccountService struct {
	users    UserLookup
	writer   UserWriter
	balances LedgerReader
	txns     TransactionLister
	agents   AgentBalanceReader
	pins     PinSetter
	verifier PinVerifier
}

func NewAccountService(
	users UserLookup,
	writer UserWriter,
	balances LedgerReader,
	txns TransactionLister,
	agents AgentBalanceReader,
	pins PinSetter,
	verifier PinVerifier,
) *AccountService {
	return &AccountService{
		users:    users,
		writer:   writer,
		balances: balances,
		txns:     txns,
		agents:   agents,
		pins:     pins,
		verifier: verifier,
	}
}

// Register creates a user. At least one of phone or principal is required,
// and both are unique across all users.
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if params.PhoneNumber == nil && params.PrincipalID == nil {
		return nil, errs.InvalidInput("A phone number or principal is required")
	}
	if params.UserType != models.UserTypeUser && params.UserType != models.UserTypeAgent {
		return nil, errs.InvalidInput("Unknown user type %q", params.UserType)
	}

	existing, err := s.users.GetByPhoneOrPrincipal(ctx, params.PhoneNumber, params.PrincipalID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if existing != nil {
		return nil, errs.InvalidInput("A user with this identifier already exists")
	}

	now := time.Now()
	user := &models.User{
		ID:                uuid.New().String(),
		UserType:          params.UserType,
		PhoneNumber:       params.PhoneNumber,
		PrincipalID:       params.PrincipalID,
		FirstName:         params.FirstName,
		LastName:          params.LastName,
		Email:             params.Email,
		PreferredCurrency: params.PreferredCurrency,
		KYCStatus:         models.KYCNotStarted,
		CreatedAt:         now,
		LastActive:        now,
	}

	if err := s.writer.Save(ctx, user); err != nil {
		return nil, errs.Internal(err)
	}

	if err := s.pins.Set(ctx, user.ID, params.Pin); err != nil {
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "user_type", user.UserType)

	return user, nil
}

// Login checks the PIN for the user behind a phone or principal. A wrong PIN
// counts against the lockout budget like any other attempt.
func (s *AccountService) Login(ctx context.Context, phone, principal *string, pin string) (*models.User, error) {
	if phone == nil && principal == nil {
		return nil, errs.InvalidInput("A phone number or principal is required")
	}

	user, err := s.users.GetByPhoneOrPrincipal(ctx, phone, principal)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if user == nil {
		return nil, errs.NotFound("User not found")
	}

	if err := s.verifier.Verify(ctx, user.ID, pin); err != nil {
		return nil, err
	}

	if err := s.writer.TouchLastActive(ctx, user.ID); err != nil {
		logger.Log.Warnw("failed to touch last active", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// LinkIdentifier attaches a phone number or principal to an existing account.
// An identifier can only be added where none is set: linked identifiers are
// permanent and are never changed or unlinked.
func (s *AccountService) LinkIdentifier(ctx context.Context, userID string, phone, principal *string) (*models.User, error) {
	if phone == nil && principal == nil {
		return nil, errs.InvalidInput("A phone number or principal is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if user == nil {
		return nil, errs.NotFound("User not found")
	}

	if phone != nil && user.PhoneNumber != nil && *user.PhoneNumber != *phone {
		return nil, errs.InvalidInput("A phone number is already linked to this account")
	}
	if principal != nil && user.PrincipalID != nil && *user.PrincipalID != *principal {
		return nil, errs.InvalidInput("A principal is already linked to this account")
	}

	holder, err := s.users.GetByPhoneOrPrincipal(ctx, phone, principal)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if holder != nil && holder.ID != userID {
		return nil, errs.InvalidInput("A user with this identifier already exists")
	}

	if phone != nil {
		user.PhoneNumber = phone
	}
	if principal != nil {
		user.PrincipalID = principal
	}

	if err := s.writer.Save(ctx, user); err != nil {
		return nil, errs.Internal(err)
	}

	logger.Log.Infow("identifier linked", "user_id", userID,
		"phone_linked", phone != nil, "principal_linked", principal != nil)

	return user, nil
}

// GetUser returns a user or NotFound.
func (s *AccountService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if user == nil {
		return nil, errs.NotFound("User not found")
	}
	return user, nil
}

// GetFiatBalances returns all fiat balances for a user.
func (s *AccountService) GetFiatBalances(ctx context.Context, userID string) (map[string]int64, error) {
	balances, err := s.balances.GetFiatBalances(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return balances, nil
}

// GetCryptoBalances returns all crypto holdings for a user.
func (s *AccountService) GetCryptoBalances(ctx context.Context, userID string) (map[models.CryptoAsset]int64, error) {
	amounts, err := s.balances.GetCryptoBalances(ctx, userID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return amounts, nil
}

// GetHistory returns the user's transactions, newest first.
func (s *AccountService) GetHistory(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.txns.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return txns, nil
}

// GetAgentBalances returns an agent's accrued totals per currency.
func (s *AccountService) GetAgentBalances(ctx context.Context, agentID string) ([]models.AgentBalance, error) {
	agent, err := s.users.GetByID(ctx, agentID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if agent == nil {
		return nil, errs.NotFound("Agent not found")
	}
	if agent.UserType != models.UserTypeAgent {
		return nil, errs.NotAuthorized("User is not an agent")
	}
	balances, err := s.agents.GetByAgentID(ctx, agentID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return balances, nil
}
