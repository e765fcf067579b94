package handlers

import (
	"net/http"

	"terek_backend/internal/services"
	"terek_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
}

func NewInquiryHandler(base *BaseHandler, inquiryService services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		BaseHandler:    base,
		inquiryService: inquiryService,
	}
}

// Submit handles POST /api/inquiries (contact and partnership forms).
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inquiry)
}
