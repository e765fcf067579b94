package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"terek_backend/internal/config"
	"terek_backend/internal/gateway/ioka"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	cfg.Server.Env = "test"
	config.AppConfig = cfg

	os.Exit(m.Run())
}

// setupDB opens a fresh in-memory database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Package{},
		&models.Donation{},
		&models.Certificate{},
		&models.News{},
		&models.Inquiry{},
	))

	return db
}

func setupRepos(t *testing.T) *repositories.Registry {
	t.Helper()
	return repositories.NewRegistry(setupDB(t))
}

func seedCatalog(t *testing.T, repos *repositories.Registry) (*models.Location, *models.Package) {
	t.Helper()

	location := &models.Location{Name: "Almaty Hills", Status: "active", CapacityTrees: 10000}
	require.NoError(t, repos.Locations.Create(location))

	pkg := &models.Package{Name: "Grove", TreeCount: 10, Price: 25000}
	require.NoError(t, repos.Packages.Create(pkg))

	return location, pkg
}

func seedDonation(t *testing.T, repos *repositories.Registry, userID *string, email string, status models.DonationStatus) *models.Donation {
	t.Helper()

	location, pkg := seedCatalog(t, repos)
	donation := &models.Donation{
		LocationID: location.ID,
		PackageID:  pkg.ID,
		UserID:     userID,
		Email:      email,
		TreeCount:  pkg.TreeCount,
		Amount:     pkg.Price,
		Status:     status,
	}
	require.NoError(t, repos.Donations.Create(donation))
	return donation
}

// fakeGateway is a scripted ioka.Gateway for service tests.
type fakeGateway struct {
	enabled      bool
	orderStatus  string
	createErr    error
	statusErr    error
	createdCount int
	verifyResult bool
}

func (g *fakeGateway) Enabled() bool { return g.enabled }

func (g *fakeGateway) CreateOrder(ctx context.Context, p ioka.CreateOrderParams) (*ioka.Order, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.createdCount++
	return &ioka.Order{
		ID:          "ord_" + p.DonationID,
		Status:      "UNPAID",
		CheckoutURL: "https://checkout.test/" + p.DonationID,
		ExternalID:  p.DonationID,
	}, nil
}

func (g *fakeGateway) GetStatus(ctx context.Context, orderID string) (*ioka.Order, error) {
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	return &ioka.Order{ID: orderID, Status: g.orderStatus}, nil
}

func (g *fakeGateway) VerifySignature(payload []byte, signature string) bool {
	return g.verifyResult
}

func (g *fakeGateway) Refund(ctx context.Context, orderID string, amount *int64) (*ioka.RefundResult, error) {
	return &ioka.RefundResult{ID: "ref_" + orderID, Status: "APPROVED"}, nil
}

// fakeRenderer counts renders; failing mimics an unavailable artifact store.
type fakeRenderer struct {
	fail    bool
	renders int
}

func (r *fakeRenderer) Render(donation *models.Donation) (*string, error) {
	if r.fail {
		return nil, errors.New("renderer unavailable")
	}
	if donation.Status != models.DonationStatusCompleted {
		return nil, nil
	}
	r.renders++
	url := "/certificates/" + donation.ID + ".png"
	return &url, nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) SendCertificateReady(donation *models.Donation, certificateURL string) error {
	m.sent = append(m.sent, donation.Email)
	return nil
}
