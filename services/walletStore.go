package services

import (
	"context"
	"errors"
	"time"

	"github.com/Keerthanaa24/SkipQ/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WalletStore abstracts the wallet collections so the service logic can
// be exercised against an in-memory fake in tests.
type WalletStore interface {
	GetWallet(ctx context.Context, userId string) (*models.Wallet, error)
	InitWallet(ctx context.Context, userId string) (*models.Wallet, error)
	// CreditBalance atomically adds amount to the user's balance,
	// creating the wallet if needed, and returns the new balance.
	CreditBalance(ctx context.Context, userId string, amount int64) (int64, error)
	// DebitBalance atomically subtracts amount if and only if the
	// current balance covers it; otherwise ErrInsufficientBalance.
	DebitBalance(ctx context.Context, userId string, amount int64) (int64, error)
	AppendTransaction(ctx context.Context, txn models.WalletTransaction) error
	ListTransactions(ctx context.Context, userId string) ([]models.WalletTransaction, error)
	GetPin(ctx context.Context, userId string) (*models.WalletPin, error)
	CreatePin(ctx context.Context, userId, pinHash string) error
	UpdatePin(ctx context.Context, userId, pinHash string) error
}

var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrPinNotFound    = errors.New("wallet PIN not set")
	ErrPinExists      = errors.New("wallet PIN already exists")
)

type mongoWalletStore struct {
	wallets      *mongo.Collection
	pins         *mongo.Collection
	transactions *mongo.Collection
}

// NewMongoWalletStore wires the store to the wallets, walletPins and
// walletTransactions collections.
func NewMongoWalletStore(wallets, pins, transactions *mongo.Collection) WalletStore {
	return &mongoWalletStore{
		wallets:      wallets,
		pins:         pins,
		transactions: transactions,
	}
}

func (s *mongoWalletStore) GetWallet(ctx context.Context, userId string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.wallets.FindOne(ctx, bson.M{"user_id": userId}).Decode(&wallet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *mongoWalletStore) InitWallet(ctx context.Context, userId string) (*models.Wallet, error) {
	// Upsert keeps concurrent first accesses from creating two wallets.
	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"balance":    int64(0),
			"updated_at": time.Now(),
		},
	}
	opt := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var wallet models.Wallet
	if err := s.wallets.FindOneAndUpdate(ctx, filter, update, opt).Decode(&wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *mongoWalletStore) CreditBalance(ctx context.Context, userId string, amount int64) (int64, error) {
	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opt := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var wallet models.Wallet
	if err := s.wallets.FindOneAndUpdate(ctx, filter, update, opt).Decode(&wallet); err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (s *mongoWalletStore) DebitBalance(ctx context.Context, userId string, amount int64) (int64, error) {
	// The balance guard lives in the filter, so two concurrent debits
	// cannot both pass a stale pre-check.
	filter := bson.M{"user_id": userId, "balance": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var wallet models.Wallet
	err := s.wallets.FindOneAndUpdate(ctx, filter, update, opt).Decode(&wallet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrInsufficientBalance
	} else if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (s *mongoWalletStore) AppendTransaction(ctx context.Context, txn models.WalletTransaction) error {
	_, err := s.transactions.InsertOne(ctx, txn)
	return err
}

func (s *mongoWalletStore) ListTransactions(ctx context.Context, userId string) ([]models.WalletTransaction, error) {
	opt := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.transactions.Find(ctx, bson.M{"user_id": userId}, opt)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txns []models.WalletTransaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *mongoWalletStore) GetPin(ctx context.Context, userId string) (*models.WalletPin, error) {
	var pin models.WalletPin
	err := s.pins.FindOne(ctx, bson.M{"user_id": userId}).Decode(&pin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPinNotFound
	} else if err != nil {
		return nil, err
	}
	return &pin, nil
}

func (s *mongoWalletStore) CreatePin(ctx context.Context, userId, pinHash string) error {
	count, err := s.pins.CountDocuments(ctx, bson.M{"user_id": userId})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPinExists
	}

	pin := models.WalletPin{
		ID:         primitive.NewObjectID(),
		User_id:    userId,
		Pin_hash:   pinHash,
		Created_at: time.Now(),
		Updated_at: time.Now(),
	}
	_, err = s.pins.InsertOne(ctx, pin)
	return err
}

func (s *mongoWalletStore) UpdatePin(ctx context.Context, userId, pinHash string) error {
	update := bson.M{"$set": bson.M{"pin_hash": pinHash, "updated_at": time.Now()}}
	result, err := s.pins.UpdateOne(ctx, bson.M{"user_id": userId}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPinNotFound
	}
	return nil
}
