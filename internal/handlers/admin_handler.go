package handlers

import (
	"net/http"

	"terek_backend/internal/models"
	"terek_backend/internal/services"
	"terek_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the write side of the catalog plus account, donation and
// report management. Every route behind it requires the admin role.
type AdminHandler struct {
	*BaseHandler
	userService     services.UserService
	donationService services.DonationService
	paymentService  services.PaymentService
	locationService services.LocationService
	packageService  services.PackageService
	newsService     services.NewsService
	inquiryService  services.InquiryService
}

func NewAdminHandler(
	base *BaseHandler,
	userService services.UserService,
	donationService services.DonationService,
	paymentService services.PaymentService,
	locationService services.LocationService,
	packageService services.PackageService,
	newsService services.NewsService,
	inquiryService services.InquiryService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		userService:     userService,
		donationService: donationService,
		paymentService:  paymentService,
		locationService: locationService,
		packageService:  packageService,
		newsService:     newsService,
		inquiryService:  inquiryService,
	}
}

// --- Users ---

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := ParsePagination(c)
	resp, err := h.userService.ListAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.userService.AdminUpdate(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Param("id"), actorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Donations ---

func (h *AdminHandler) ListDonations(c *gin.Context) {
	limit, offset := ParsePagination(c)
	donations, err := h.donationService.ListAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

func (h *AdminHandler) UpdateDonation(c *gin.Context) {
	var req dto.AdminUpdateDonationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.Status == nil {
		c.JSON(http.StatusOK, gin.H{"status": "unchanged"})
		return
	}

	donation, err := h.donationService.AdminUpdateStatus(c.Param("id"), models.DonationStatus(*req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

func (h *AdminHandler) RefundDonation(c *gin.Context) {
	var req dto.RefundRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.paymentService.Refund(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// --- Locations ---

func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *AdminHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locationService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	if err := h.locationService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Packages ---

func (h *AdminHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *AdminHandler) UpdatePackage(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *AdminHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- News ---

func (h *AdminHandler) ListNews(c *gin.Context) {
	articles, err := h.newsService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": articles})
}

func (h *AdminHandler) CreateNews(c *gin.Context) {
	var req dto.CreateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *AdminHandler) UpdateNews(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	article, err := h.newsService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *AdminHandler) DeleteNews(c *gin.Context) {
	if err := h.newsService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Inquiries and reports ---

func (h *AdminHandler) ListInquiries(c *gin.Context) {
	limit, offset := ParsePagination(c)
	inquiries, err := h.inquiryService.ListAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

// DonationSummary handles GET /api/admin/reports/donations.
func (h *AdminHandler) DonationSummary(c *gin.Context) {
	summary, err := h.donationService.Summary()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
