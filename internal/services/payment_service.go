package services

import (
	"context"
	"encoding/json"

	"terek_backend/internal/appErrors"
	"terek_backend/internal/gateway/ioka"
	"terek_backend/internal/logger"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
	"terek_backend/ws"
)

// PaymentService is the reconciliation engine around the payment gateway.
// Donation statuses only move forward: pending → awaiting_payment →
// {completed, failed, cancelled}, and every transition into a terminal
// status is guarded at the storage layer so webhooks, polls and admin
// actions can race without double-applying.
type PaymentService interface {
	// Initiate creates a gateway order for the caller's own donation. With
	// the gateway disabled the donation completes immediately through the
	// bypass path.
	Initiate(ctx context.Context, donationID, actorUserID string) (*dto.InitiatePaymentResponse, error)
	// InitiateGuest is the unauthenticated variant. It refuses donations
	// owned by an active account; those must go through Initiate.
	InitiateGuest(ctx context.Context, donationID string) (*dto.InitiatePaymentResponse, error)
	// HandleWebhook applies a verified provider event. Unknown event types
	// succeed as no-ops so the provider does not retry them forever.
	HandleWebhook(ctx context.Context, event *ioka.WebhookEvent) error
	// PollStatus reconciles against the gateway when the donation is still
	// awaiting payment, then reports status plus account hints for the
	// donor-facing waiting page.
	PollStatus(ctx context.Context, donationID string) (*dto.DonationStatusResponse, error)
	// Refund forwards a refund to the gateway. Admin-only; it does not feed
	// back into the reconciliation flow.
	Refund(ctx context.Context, donationID string, amount *int64) (*ioka.RefundResult, error)
}

type PaymentServiceImpl struct {
	donationRepo repositories.DonationRepository
	userRepo     repositories.UserRepository
	gateway      ioka.Gateway
	certs        CertificateService
	feed         *ws.FeedManager
}

func NewPaymentService(
	donationRepo repositories.DonationRepository,
	userRepo repositories.UserRepository,
	gateway ioka.Gateway,
	certs CertificateService,
	feed *ws.FeedManager,
) PaymentService {
	return &PaymentServiceImpl{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		certs:        certs,
		feed:         feed,
	}
}

func (s *PaymentServiceImpl) Initiate(ctx context.Context, donationID, actorUserID string) (*dto.InitiatePaymentResponse, error) {
	donation, err := s.loadDonation(donationID)
	if err != nil {
		return nil, err
	}

	if donation.UserID == nil || *donation.UserID != actorUserID {
		return nil, appErrors.ErrPermissionDenied
	}

	return s.initiate(ctx, donation)
}

func (s *PaymentServiceImpl) InitiateGuest(ctx context.Context, donationID string) (*dto.InitiatePaymentResponse, error) {
	donation, err := s.loadDonation(donationID)
	if err != nil {
		return nil, err
	}

	if donation.UserID != nil {
		owner, err := s.userRepo.FindByID(*donation.UserID)
		if err != nil && !appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.InternalError(err)
		}
		if err == nil && !owner.IsGuest() {
			// Registered owner must authenticate to pay.
			return nil, appErrors.ErrPermissionDenied
		}
	}

	return s.initiate(ctx, donation)
}

func (s *PaymentServiceImpl) initiate(ctx context.Context, donation *models.Donation) (*dto.InitiatePaymentResponse, error) {
	if donation.Status != models.DonationStatusPending {
		return nil, appErrors.NewBadRequestError("Donation is not awaiting payment initiation")
	}

	if !s.gateway.Enabled() {
		// Bypass mode: no gateway configured, complete directly.
		changed, err := s.donationRepo.Transition(donation.ID, models.DonationStatusCompleted)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if changed {
			logger.Warn("payment bypassed, gateway disabled", "donation_id", donation.ID)
			s.finalizeCompletion(donation.ID)
		}
		return &dto.InitiatePaymentResponse{
			DonationID: donation.ID,
			Status:     string(models.DonationStatusCompleted),
			Bypassed:   true,
		}, nil
	}

	description := "Tree planting donation"
	if donation.Package != nil {
		description = donation.Package.Name
	}

	var customerName string
	if len(donation.DonorInfo) > 0 {
		var info map[string]string
		if json.Unmarshal(donation.DonorInfo, &info) == nil {
			customerName = info["name"]
		}
	}

	order, err := s.gateway.CreateOrder(ctx, ioka.CreateOrderParams{
		Amount:        donation.Amount,
		Description:   description,
		DonationID:    donation.ID,
		CustomerEmail: donation.Email,
		CustomerName:  customerName,
	})
	if err != nil {
		// Donation stays pending; the donor can retry.
		logger.WithError(err).Error("gateway order creation failed", "donation_id", donation.ID)
		return nil, appErrors.GatewayFailure(err.Error())
	}

	if err := s.donationRepo.SetPaymentOrder(donation.ID, order.ID); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("payment order created",
		"donation_id", donation.ID,
		"order_id", order.ID,
		"amount", donation.Amount,
	)

	return &dto.InitiatePaymentResponse{
		DonationID:  donation.ID,
		Status:      string(models.DonationStatusAwaitingPayment),
		CheckoutURL: order.CheckoutURL,
	}, nil
}

func (s *PaymentServiceImpl) HandleWebhook(ctx context.Context, event *ioka.WebhookEvent) error {
	var target models.DonationStatus
	switch event.Event {
	case ioka.EventPaymentSucceeded:
		target = models.DonationStatusCompleted
	case ioka.EventPaymentFailed:
		target = models.DonationStatusFailed
	case ioka.EventPaymentCancelled:
		target = models.DonationStatusCancelled
	default:
		logger.Info("ignoring webhook event", "event", event.Event)
		return nil
	}

	donationID := event.DonationID()
	if donationID == "" {
		return appErrors.NewBadRequestError("Webhook payload carries no donation reference")
	}

	if _, err := s.loadDonation(donationID); err != nil {
		return err
	}

	changed, err := s.donationRepo.Transition(donationID, target)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if !changed {
		// Redundant delivery after a terminal transition; acknowledged.
		logger.Info("webhook transition skipped", "donation_id", donationID, "target", target)
		return nil
	}

	logger.Info("webhook applied", "donation_id", donationID, "status", target)

	if target == models.DonationStatusCompleted {
		s.finalizeCompletion(donationID)
	}
	return nil
}

func (s *PaymentServiceImpl) PollStatus(ctx context.Context, donationID string) (*dto.DonationStatusResponse, error) {
	donation, err := s.loadDonation(donationID)
	if err != nil {
		return nil, err
	}

	if donation.Status == models.DonationStatusAwaitingPayment && donation.PaymentOrderID != nil {
		donation = s.reconcile(ctx, donation)
	}

	resp := &dto.DonationStatusResponse{
		DonationID: donation.ID,
		Status:     string(donation.Status),
	}
	if donation.Certificate != nil {
		resp.CertificateAvailable = true
		resp.CertificateURL = donation.Certificate.PDFURL
	}

	account, err := s.userRepo.FindByEmail(donation.Email)
	switch {
	case err == nil:
		resp.HasAccount = !account.IsGuest()
		resp.IsGuest = account.IsGuest()
	case !appErrors.Is(err, repositories.ErrUserNotFound):
		return nil, appErrors.InternalError(err)
	}

	return resp, nil
}

// reconcile queries the gateway and applies the mapped transition. Gateway
// failures leave the donation untouched; the next poll retries.
func (s *PaymentServiceImpl) reconcile(ctx context.Context, donation *models.Donation) *models.Donation {
	order, err := s.gateway.GetStatus(ctx, *donation.PaymentOrderID)
	if err != nil {
		logger.WithError(err).Warn("gateway status query failed", "donation_id", donation.ID)
		return donation
	}

	var target models.DonationStatus
	switch order.Status {
	case ioka.StatusPaid:
		target = models.DonationStatusCompleted
	case ioka.StatusCancelled, ioka.StatusExpired:
		target = models.DonationStatusCancelled
	case ioka.StatusDeclined:
		target = models.DonationStatusFailed
	default:
		return donation
	}

	changed, err := s.donationRepo.Transition(donation.ID, target)
	if err != nil {
		logger.WithError(err).Error("reconcile transition failed", "donation_id", donation.ID)
		return donation
	}
	if changed {
		logger.Info("poll reconciled donation", "donation_id", donation.ID, "status", target)
		if target == models.DonationStatusCompleted {
			s.finalizeCompletion(donation.ID)
		}
	}

	if reloaded, err := s.donationRepo.FindByID(donation.ID); err == nil {
		return reloaded
	}
	return donation
}

func (s *PaymentServiceImpl) Refund(ctx context.Context, donationID string, amount *int64) (*ioka.RefundResult, error) {
	donation, err := s.loadDonation(donationID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.Enabled() {
		return nil, appErrors.ErrGatewayDisabled
	}
	if donation.PaymentOrderID == nil {
		return nil, appErrors.NewBadRequestError("Donation has no payment order to refund")
	}

	result, err := s.gateway.Refund(ctx, *donation.PaymentOrderID, amount)
	if err != nil {
		return nil, appErrors.GatewayFailure(err.Error())
	}

	logger.Info("refund submitted", "donation_id", donationID, "order_id", *donation.PaymentOrderID)
	return result, nil
}

// finalizeCompletion issues the certificate and announces the donation on
// the public feed. Called exactly once per donation in the happy path, but
// harmless when repeated.
func (s *PaymentServiceImpl) finalizeCompletion(donationID string) {
	donation, err := s.donationRepo.FindByID(donationID)
	if err != nil {
		logger.WithError(err).Error("completed donation reload failed", "donation_id", donationID)
		return
	}

	if _, err := s.certs.EnsureCertificate(donation); err != nil {
		logger.WithError(err).Error("certificate issuance failed", "donation_id", donationID)
	}

	if s.feed != nil {
		event := ws.FeedEvent{
			Type:       "donation.completed",
			DonationID: donation.ID,
			TreeCount:  donation.TreeCount,
		}
		if donation.Location != nil {
			event.LocationName = donation.Location.Name
		}
		s.feed.Broadcast(event)
	}
}

func (s *PaymentServiceImpl) loadDonation(id string) (*models.Donation, error) {
	donation, err := s.donationRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrDonationNotFound) {
			return nil, appErrors.ErrDonationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return donation, nil
}
