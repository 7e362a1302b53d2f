package service

// QRCodeService renders challenge join codes as scannable PNG images
// and decodes scanned payloads back into join codes.
type QRCodeService interface {
	GenerateJoinQR(joinCode string) ([]byte, error)
	ParseJoinQR(qrData string) (string, error)
}
