package handlers

import (
	"net/http"

	"terek_backend/internal/services"
	"terek_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	*BaseHandler
	donationService services.DonationService
	paymentService  services.PaymentService
}

func NewDonationHandler(
	base *BaseHandler,
	donationService services.DonationService,
	paymentService services.PaymentService,
) *DonationHandler {
	return &DonationHandler{
		BaseHandler:     base,
		donationService: donationService,
		paymentService:  paymentService,
	}
}

// Create handles POST /api/donations (authenticated).
func (h *DonationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDonationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	donation, err := h.donationService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

// CreateGuest handles POST /api/guest-donations.
func (h *DonationHandler) CreateGuest(c *gin.Context) {
	var req dto.CreateDonationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	donation, err := h.donationService.CreateGuest(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

// InitiatePayment handles POST /api/donations/:id/payment (authenticated,
// owner only).
func (h *DonationHandler) InitiatePayment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.Initiate(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// InitiateGuestPayment handles POST /api/guest-donations/:id/payment.
func (h *DonationHandler) InitiateGuestPayment(c *gin.Context) {
	resp, err := h.paymentService.InitiateGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Status handles GET /api/donations/:id/status, the poll the payment
// waiting page runs. It reconciles against the gateway when needed.
func (h *DonationHandler) Status(c *gin.Context) {
	resp, err := h.paymentService.PollStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMine handles GET /api/users/me/donations.
func (h *DonationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	donations, err := h.donationService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

// Get handles GET /api/donations/:id for the owner or an admin.
func (h *DonationHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	role, _ := c.Get("role")
	donation, err := h.donationService.GetForActor(c.Param("id"), userID, role == "admin")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, donation)
}
