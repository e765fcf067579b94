package handlers

import (
	"net/http"

	"terek_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public read side of locations and packages. The
// admin write side lives in AdminHandler.
type CatalogHandler struct {
	*BaseHandler
	locationService services.LocationService
	packageService  services.PackageService
}

func NewCatalogHandler(
	base *BaseHandler,
	locationService services.LocationService,
	packageService services.PackageService,
) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:     base,
		locationService: locationService,
		packageService:  packageService,
	}
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *CatalogHandler) GetLocation(c *gin.Context) {
	location, err := h.locationService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.packageService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// ListPackagesByLocation checks the location exists and returns the catalog.
// Packages are not location-bound, so every location offers the full set.
func (h *CatalogHandler) ListPackagesByLocation(c *gin.Context) {
	if _, err := h.locationService.Get(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.ListPackages(c)
}
