package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateURLQR renders content (usually a public URL) as a PNG QR code
	GenerateURLQR(content string) ([]byte, error)
}
