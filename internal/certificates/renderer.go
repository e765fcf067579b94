package certificates

import (
	"fmt"
	"os"
	"path/filepath"

	"terek_backend/internal/config"
	"terek_backend/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer produces the certificate artifact for a completed donation.
// It is a pure function of the donation: given the same donation it writes
// the same file and returns its public URL. A nil URL means rendering was
// unavailable and the caller should fall back to a synthesized link.
type Renderer interface {
	Render(donation *models.Donation) (*string, error)
}

// QRRenderer writes a PNG QR code that encodes the certificate verification
// link on the frontend. The artifact is served from the certificates dir.
type QRRenderer struct {
	dir         string
	baseURL     string
	frontendURL string
}

func NewQRRenderer(cfg *config.Config) (*QRRenderer, error) {
	if err := os.MkdirAll(cfg.Certificates.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create certificates dir: %w", err)
	}
	return &QRRenderer{
		dir:         cfg.Certificates.Dir,
		baseURL:     cfg.Certificates.BaseURL,
		frontendURL: cfg.URLs.Frontend,
	}, nil
}

func (r *QRRenderer) Render(donation *models.Donation) (*string, error) {
	// The issuer may be invoked on a stale snapshot; re-check completion
	// here as an independent safety gate.
	if donation.Status != models.DonationStatusCompleted {
		return nil, nil
	}

	verifyURL := fmt.Sprintf("%s/certificates/verify/%s", r.frontendURL, donation.ID)
	filename := donation.ID + ".png"

	if err := qrcode.WriteFile(verifyURL, qrcode.Medium, 512, filepath.Join(r.dir, filename)); err != nil {
		return nil, fmt.Errorf("render certificate qr: %w", err)
	}

	url := r.baseURL + "/" + filename
	return &url, nil
}
