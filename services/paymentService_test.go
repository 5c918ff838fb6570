package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(orderId, paymentId, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	signature := signPayment("order_abc", "pay_xyz", secret)

	assert.True(t, VerifySignature("order_abc", "pay_xyz", signature, secret))

	// Any piece of the tuple changing invalidates the signature.
	assert.False(t, VerifySignature("order_other", "pay_xyz", signature, secret))
	assert.False(t, VerifySignature("order_abc", "pay_other", signature, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", signature, "wrong_secret"))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "forged", secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "", secret))
}
