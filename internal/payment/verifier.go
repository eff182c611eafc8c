package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	apperrors "mela-ticketing/pkg/app_errors"
)

// SignatureVerifier 金流回調的驗章掛鉤。未設定時回調內容被無條件信任，
// 這是一個明確的部署設定選擇，啟動時會記錄警告
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) error
}

type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) SignatureVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify 依 Razorpay 規格驗證：HMAC-SHA256(orderID + "|" + paymentID, secret)
func (v *HMACVerifier) Verify(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.ErrInvalidSignature
	}
	return nil
}
