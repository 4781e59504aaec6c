package service

// QRCodeService renders links as scannable images
type QRCodeService interface {
	// GenerateLinkQR returns a PNG QR code encoding link
	GenerateLinkQR(link string) ([]byte, error)
}
