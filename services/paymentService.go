package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

var (
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrGatewayOrder        = errors.New("failed to create payment gateway order")
)

// PaymentService fronts the Razorpay gateway. The server creates the
// gateway order for the requested amount and later verifies the
// checkout callback, so the amount credited is the one recorded at the
// gateway, never a figure supplied by the client.
type PaymentService struct {
	client    *razorpay.Client
	keySecret string
}

func NewPaymentService() *PaymentService {
	keyId := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	return &PaymentService{
		client:    razorpay.NewClient(keyId, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers a gateway order for the amount (paise) and
// returns its id for the checkout widget.
func (p *PaymentService) CreateOrder(amount int64) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  "rcpt_" + uuid.NewString(),
	}

	order, err := p.client.Order.Create(data, nil)
	if err != nil {
		return "", ErrGatewayOrder
	}

	orderId, ok := order["id"].(string)
	if !ok || orderId == "" {
		return "", ErrGatewayOrder
	}
	return orderId, nil
}

// VerifyPayment checks the checkout signature against the gateway
// order, then reads the authorized amount back from the gateway order
// record. Returns the verified amount in paise.
func (p *PaymentService) VerifyPayment(gatewayOrderId, paymentId, signature string) (int64, error) {
	if !VerifySignature(gatewayOrderId, paymentId, signature, p.keySecret) {
		return 0, ErrPaymentVerification
	}

	order, err := p.client.Order.Fetch(gatewayOrderId, nil, nil)
	if err != nil {
		return 0, ErrPaymentVerification
	}

	amount, ok := order["amount"].(float64)
	if !ok || amount <= 0 {
		return 0, ErrPaymentVerification
	}
	return int64(amount), nil
}

// VerifySignature checks the Razorpay checkout signature, which is
// HMAC-SHA256(orderId + "|" + paymentId) under the key secret.
func VerifySignature(gatewayOrderId, paymentId, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
