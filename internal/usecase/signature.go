package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
)

// SignPayment returns the hex HMAC-SHA256 the provider sends back on checkout
// completion: HMAC(secret, providerOrderID + "|" + providerPaymentID).
func SignPayment(providerOrderID, providerPaymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(providerOrderID + "|" + providerPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a checkout callback signature in constant time.
// It never panics and returns false on any malformed input.
func VerifySignature(providerOrderID, providerPaymentID, signature, secret string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[security][signature] verifier panic recovered: %v", r)
			ok = false
		}
	}()

	if providerOrderID == "" || providerPaymentID == "" || secret == "" {
		return false
	}
	return verifyHex(SignPayment(providerOrderID, providerPaymentID, secret), signature)
}

// VerifyWebhookSignature checks the provider webhook signature, computed over
// the raw request body with the webhook secret.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if len(body) == 0 || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return verifyHex(hex.EncodeToString(mac.Sum(nil)), signature)
}

func verifyHex(expected, got string) bool {
	got = strings.ToLower(strings.TrimSpace(got))
	if _, err := hex.DecodeString(got); err != nil || got == "" {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(got))
}
