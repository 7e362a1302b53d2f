package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"gravity/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	JoinCode string `json:"join_code"`
	Type     string `json:"type"`
}

const joinType = "challenge_join"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateJoinQR generates a QR code image for a challenge join code
func (s *qrcodeService) GenerateJoinQR(joinCode string) ([]byte, error) {
	data := QRCodeData{
		JoinCode: joinCode,
		Type:     joinType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseJoinQR parses scanned QR payload and returns the join code
func (s *qrcodeService) ParseJoinQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != joinType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	joinCode := strings.TrimSpace(data.JoinCode)
	if joinCode == "" {
		return "", fmt.Errorf("QR code carries no join code")
	}

	return joinCode, nil
}
