package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Encode 將 payload 編成 QR PNG。純函式，只用於顯示，不參與任何授權判斷
func Encode(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr: %w", err)
	}
	return png, nil
}

// DataURI 回傳可直接嵌入 <img src> 的 data URI
func DataURI(payload string) (string, error) {
	png, err := Encode(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
