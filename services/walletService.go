package services

import (
	"context"
	"errors"
	"time"

	"github.com/Keerthanaa24/SkipQ/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidPin          = errors.New("PIN must be a 4-digit number")
	ErrIncorrectPin        = errors.New("incorrect PIN")
)

// WalletService owns balance, PIN and ledger operations for user
// wallets. Every balance mutation appends exactly one ledger entry.
type WalletService struct {
	store WalletStore
}

func NewWalletService(store WalletStore) *WalletService {
	return &WalletService{store: store}
}

// GetOrInitBalance returns the user's balance, creating the wallet with
// balance 0 on first access. Idempotent.
func (s *WalletService) GetOrInitBalance(ctx context.Context, userId string) (int64, error) {
	wallet, err := s.store.GetWallet(ctx, userId)
	if errors.Is(err, ErrWalletNotFound) {
		wallet, err = s.store.InitWallet(ctx, userId)
	}
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// AddMoney credits the wallet after a gateway payment has been verified
// upstream. paymentId records the gateway reference on the ledger entry.
func (s *WalletService) AddMoney(ctx context.Context, userId string, amount int64, paymentId string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.store.CreditBalance(ctx, userId, amount)
	if err != nil {
		return 0, err
	}

	txn := models.WalletTransaction{
		ID:         primitive.NewObjectID(),
		User_id:    userId,
		Type:       models.TransactionAdd,
		Amount:     amount,
		Reason:     "Wallet Top-up",
		Payment_id: paymentId,
		Created_at: time.Now(),
	}
	txn.Transaction_id = txn.ID.Hex()
	if err := s.store.AppendTransaction(ctx, txn); err != nil {
		return balance, err
	}
	return balance, nil
}

// DeductMoney debits the wallet if the balance covers the amount; the
// store enforces the balance guard atomically, so a failure mutates
// nothing.
func (s *WalletService) DeductMoney(ctx context.Context, userId string, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.store.DebitBalance(ctx, userId, amount)
	if err != nil {
		return 0, err
	}

	txn := models.WalletTransaction{
		ID:         primitive.NewObjectID(),
		User_id:    userId,
		Type:       models.TransactionDeduct,
		Amount:     amount,
		Reason:     reason,
		Created_at: time.Now(),
	}
	txn.Transaction_id = txn.ID.Hex()
	if err := s.store.AppendTransaction(ctx, txn); err != nil {
		return balance, err
	}
	return balance, nil
}

// Refund re-credits an amount after a failed downstream step (the
// compensating action for a deduct whose order never got created).
func (s *WalletService) Refund(ctx context.Context, userId string, amount int64, reason string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if _, err := s.store.CreditBalance(ctx, userId, amount); err != nil {
		return err
	}

	txn := models.WalletTransaction{
		ID:         primitive.NewObjectID(),
		User_id:    userId,
		Type:       models.TransactionAdd,
		Amount:     amount,
		Reason:     reason,
		Created_at: time.Now(),
	}
	txn.Transaction_id = txn.ID.Hex()
	return s.store.AppendTransaction(ctx, txn)
}

// Transactions returns the user's ledger newest-first.
func (s *WalletService) Transactions(ctx context.Context, userId string) ([]models.WalletTransaction, error) {
	return s.store.ListTransactions(ctx, userId)
}

// HasPin reports whether the user has configured a wallet PIN.
func (s *WalletService) HasPin(ctx context.Context, userId string) (bool, error) {
	_, err := s.store.GetPin(ctx, userId)
	if errors.Is(err, ErrPinNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// CreatePin stores the digest of a 4-digit PIN. Fails with ErrPinExists
// when one is already set; changing a PIN goes through UpdatePin.
func (s *WalletService) CreatePin(ctx context.Context, userId, pin string) error {
	if !isValidPin(pin) {
		return ErrInvalidPin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.CreatePin(ctx, userId, string(hash))
}

// UpdatePin replaces the stored digest once the old PIN verifies.
func (s *WalletService) UpdatePin(ctx context.Context, userId, oldPin, newPin string) error {
	if !isValidPin(newPin) {
		return ErrInvalidPin
	}

	stored, err := s.store.GetPin(ctx, userId)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Pin_hash), []byte(oldPin)) != nil {
		return ErrIncorrectPin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePin(ctx, userId, string(hash))
}

// VerifyPin returns false when no PIN exists or the digest does not
// match; errors are reserved for store failures.
func (s *WalletService) VerifyPin(ctx context.Context, userId, pin string) (bool, error) {
	stored, err := s.store.GetPin(ctx, userId)
	if errors.Is(err, ErrPinNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(stored.Pin_hash), []byte(pin)) == nil, nil
}

func isValidPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
