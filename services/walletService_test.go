package services

import (
	"context"
	"testing"

	"github.com/Keerthanaa24/SkipQ/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWalletStore keeps wallets, PINs and the ledger in maps so the
// service logic runs without a database.
type fakeWalletStore struct {
	balances map[string]int64
	pins     map[string]string
	ledger   []models.WalletTransaction
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{
		balances: make(map[string]int64),
		pins:     make(map[string]string),
	}
}

func (f *fakeWalletStore) GetWallet(_ context.Context, userId string) (*models.Wallet, error) {
	balance, ok := f.balances[userId]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return &models.Wallet{User_id: userId, Balance: balance}, nil
}

func (f *fakeWalletStore) InitWallet(_ context.Context, userId string) (*models.Wallet, error) {
	if _, ok := f.balances[userId]; !ok {
		f.balances[userId] = 0
	}
	return &models.Wallet{User_id: userId, Balance: f.balances[userId]}, nil
}

func (f *fakeWalletStore) CreditBalance(_ context.Context, userId string, amount int64) (int64, error) {
	f.balances[userId] += amount
	return f.balances[userId], nil
}

func (f *fakeWalletStore) DebitBalance(_ context.Context, userId string, amount int64) (int64, error) {
	if f.balances[userId] < amount {
		return 0, ErrInsufficientBalance
	}
	f.balances[userId] -= amount
	return f.balances[userId], nil
}

func (f *fakeWalletStore) AppendTransaction(_ context.Context, txn models.WalletTransaction) error {
	f.ledger = append(f.ledger, txn)
	return nil
}

func (f *fakeWalletStore) ListTransactions(_ context.Context, userId string) ([]models.WalletTransaction, error) {
	var txns []models.WalletTransaction
	for i := len(f.ledger) - 1; i >= 0; i-- {
		if f.ledger[i].User_id == userId {
			txns = append(txns, f.ledger[i])
		}
	}
	return txns, nil
}

func (f *fakeWalletStore) GetPin(_ context.Context, userId string) (*models.WalletPin, error) {
	hash, ok := f.pins[userId]
	if !ok {
		return nil, ErrPinNotFound
	}
	return &models.WalletPin{User_id: userId, Pin_hash: hash}, nil
}

func (f *fakeWalletStore) CreatePin(_ context.Context, userId, pinHash string) error {
	if _, ok := f.pins[userId]; ok {
		return ErrPinExists
	}
	f.pins[userId] = pinHash
	return nil
}

func (f *fakeWalletStore) UpdatePin(_ context.Context, userId, pinHash string) error {
	if _, ok := f.pins[userId]; !ok {
		return ErrPinNotFound
	}
	f.pins[userId] = pinHash
	return nil
}

func TestGetOrInitBalance(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)

	balance, err := service.GetOrInitBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	store.balances["u1"] = 5000
	balance, err = service.GetOrInitBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestAddMoney(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)

	balance, err := service.AddMoney(ctx, "u1", 10000, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance)

	balance, err = service.AddMoney(ctx, "u1", 2500, "pay_456")
	require.NoError(t, err)
	assert.Equal(t, int64(12500), balance)

	require.Len(t, store.ledger, 2)
	assert.Equal(t, models.TransactionAdd, store.ledger[0].Type)
	assert.Equal(t, "Wallet Top-up", store.ledger[0].Reason)
	assert.Equal(t, "pay_123", store.ledger[0].Payment_id)

	_, err = service.AddMoney(ctx, "u1", 0, "pay_789")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = service.AddMoney(ctx, "u1", -100, "pay_789")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Len(t, store.ledger, 2)
}

func TestDeductMoney(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)
	store.balances["u1"] = 10000

	balance, err := service.DeductMoney(ctx, "u1", 6000, "Food Order - Masala Dosa")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), balance)

	require.Len(t, store.ledger, 1)
	assert.Equal(t, models.TransactionDeduct, store.ledger[0].Type)
	assert.Equal(t, "Food Order - Masala Dosa", store.ledger[0].Reason)
}

func TestDeductMoneyInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)
	store.balances["u1"] = 5000

	_, err := service.DeductMoney(ctx, "u1", 6000, "Food Order - Thali")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// A failed debit mutates nothing.
	assert.Equal(t, int64(5000), store.balances["u1"])
	assert.Empty(t, store.ledger)
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)
	store.balances["u1"] = 1000

	err := service.Refund(ctx, "u1", 6000, "Refund - order creation failed")
	require.NoError(t, err)
	assert.Equal(t, int64(7000), store.balances["u1"])

	require.Len(t, store.ledger, 1)
	assert.Equal(t, models.TransactionAdd, store.ledger[0].Type)
	assert.Equal(t, "Refund - order creation failed", store.ledger[0].Reason)
}

func TestTransactionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)

	_, err := service.AddMoney(ctx, "u1", 10000, "pay_1")
	require.NoError(t, err)
	_, err = service.DeductMoney(ctx, "u1", 3000, "Food Order - Idli")
	require.NoError(t, err)

	txns, err := service.Transactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, models.TransactionDeduct, txns[0].Type)
	assert.Equal(t, models.TransactionAdd, txns[1].Type)
}

func TestPinLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeWalletStore()
	service := NewWalletService(store)

	hasPin, err := service.HasPin(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, hasPin)

	// No PIN yet, so verification fails without erroring.
	ok, err := service.VerifyPin(ctx, "u1", "1234")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, service.CreatePin(ctx, "u1", "1234"))
	assert.NotEqual(t, "1234", store.pins["u1"], "PIN must be stored as a digest")

	hasPin, err = service.HasPin(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, hasPin)

	ok, err = service.VerifyPin(ctx, "u1", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.VerifyPin(ctx, "u1", "9999")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, service.CreatePin(ctx, "u1", "5678"), ErrPinExists)

	assert.ErrorIs(t, service.UpdatePin(ctx, "u1", "0000", "5678"), ErrIncorrectPin)
	require.NoError(t, service.UpdatePin(ctx, "u1", "1234", "5678"))

	ok, err = service.VerifyPin(ctx, "u1", "5678")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = service.VerifyPin(ctx, "u1", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPinValidation(t *testing.T) {
	ctx := context.Background()
	service := NewWalletService(newFakeWalletStore())

	for _, pin := range []string{"", "123", "12345", "12a4", "abcd"} {
		assert.ErrorIs(t, service.CreatePin(ctx, "u1", pin), ErrInvalidPin, "pin=%q", pin)
	}

	require.NoError(t, service.CreatePin(ctx, "u2", "0000"))
	assert.ErrorIs(t, service.UpdatePin(ctx, "u2", "0000", "12x4"), ErrInvalidPin)
}
