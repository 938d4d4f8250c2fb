package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/scrypt"

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

// PinReader looks up stored PIN records.
type PinReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.PinRecord, error)
}

// PinWriter mutates PIN state.
type PinWriter interface {
	Save(ctx context.Context, userID, pinHash string) error
	RecordFailure(ctx context.Context, userID string) (int, error)
	ResetFailures(ctx context.Context, userID string) error
	Lock(ctx context.Context, userID string, until time.Time) error
}

// scrypt cost parameters. Interactive-grade; a verification takes tens of
// milliseconds, which also throttles online guessing.
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// PinService verifies per-user PINs with lockout bookkeeping. The salt is
// derived from the user id, so the same pin and user always re-hash to the
// same value while two users with the same pin never collide.
type PinService struct {
	reader PinReader
	writer PinWriter
	cfg    config.PinConfig
	now    func() time.Time
}

func NewPinService(reader PinReader, writer PinWriter, cfg config.PinConfig) *PinService {
	return &PinService{reader: reader, writer: writer, cfg: cfg, now: time.Now}
}

// HashPin derives the stored hash for a pin.
func HashPin(pin, userID string) (string, error) {
	salt := sha256.Sum256([]byte(userID))
	key, err := scrypt.Key([]byte(pin), salt[:], scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", errs.Internal(err)
	}
	return hex.EncodeToString(key), nil
}

func (s *PinService) validateFormat(pin string) error {
	if len(pin) < s.cfg.MinLength || len(pin) > s.cfg.MaxLength {
		return errs.InvalidInput("PIN must be %d to %d digits", s.cfg.MinLength, s.cfg.MaxLength)
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return errs.InvalidInput("PIN must contain only digits")
		}
	}
	return nil
}

// Set stores a new PIN for the user, replacing any existing one and clearing
// failure state.
func (s *PinService) Set(ctx context.Context, userID, pin string) error {
	if err := s.validateFormat(pin); err != nil {
		return err
	}
	hash, err := HashPin(pin, userID)
	if err != nil {
		return err
	}
	return s.writer.Save(ctx, userID, hash)
}

// Verify checks a PIN attempt. Lockout is checked before the expensive hash;
// a locked user fails fast with the remaining duration. The user-facing
// message never distinguishes a wrong pin from other verification failures.
func (s *PinService) Verify(ctx context.Context, userID, pin string) error {
	if err := s.validateFormat(pin); err != nil {
		return err
	}

	record, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		return errs.Internal(err)
	}
	if record == nil {
		return errs.NotFound("PIN not set")
	}

	now := s.now()
	if record.LockedUntil != nil && record.LockedUntil.After(now) {
		return errs.TooManyAttempts(record.LockedUntil.Sub(now))
	}

	hash, err := HashPin(pin, userID)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(hash), []byte(record.PinHash)) != 1 {
		attempts, err := s.writer.RecordFailure(ctx, userID)
		if err != nil {
			return errs.Internal(err)
		}
		if attempts >= s.cfg.MaxAttempts {
			until := now.Add(s.cfg.LockoutDuration)
			if err := s.writer.Lock(ctx, userID, until); err != nil {
				return errs.Internal(err)
			}
			logger.Log.Warnw("pin locked", "user_id", userID, "until", until)
		}
		return errs.InvalidPin()
	}

	if record.FailedAttempts > 0 || record.LockedUntil != nil {
		if err := s.writer.ResetFailures(ctx, userID); err != nil {
			return errs.Internal(err)
		}
	}
	return nil
}

// Change verifies the old PIN, then stores the new one.
func (s *PinService) Change(ctx context.Context, userID, oldPin, newPin string) error {
	if err := s.Verify(ctx, userID, oldPin); err != nil {
		return err
	}
	return s.Set(ctx, userID, newPin)
}
