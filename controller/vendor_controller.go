// api/controller/vendor_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
	helper_util "github.com/solistore/gateway/api/util/helper"
)

type VendorController struct {
	vendorService  service.IVendorService
	validationUtil *util.ValidationUtil
}

func NewVendorController(vendorService service.IVendorService, validationUtil *util.ValidationUtil) *VendorController {
	return &VendorController{
		vendorService:  vendorService,
		validationUtil: validationUtil,
	}
}

// RegisterRoutes registers the API routes. Vendor reads need a session;
// writes need admin.
func (vc *VendorController) RegisterRoutes(protected *gin.RouterGroup, admin *gin.RouterGroup) {
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", vc.ListVendors)
		vendors.GET("/:id", vc.GetVendor)
	}
	adminVendors := admin.Group("/vendors")
	{
		adminVendors.POST("", vc.CreateVendor)
		adminVendors.PUT("/:id", vc.UpdateVendor)
		adminVendors.DELETE("/:id", vc.DeleteVendor)
	}
}

// ListVendors endpoint
func (vc *VendorController) ListVendors(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	vendors, err := vc.vendorService.ListVendors(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// GetVendor endpoint
func (vc *VendorController) GetVendor(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID", err)
		return
	}

	vendor, err := vc.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// CreateVendor endpoint
func (vc *VendorController) CreateVendor(c *gin.Context) {
	var vendor model.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor data", gw_errors.ErrInvalidVendorData)
		return
	}
	if err := vc.validationUtil.ValidateVendor(vendor); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor data", err)
		return
	}

	created, err := vc.vendorService.CreateVendor(c.Request.Context(), &vendor)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVendor endpoint
func (vc *VendorController) UpdateVendor(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID", err)
		return
	}

	var vendor model.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor data", gw_errors.ErrInvalidVendorData)
		return
	}
	vendor.ID = id
	if err := vc.validationUtil.ValidateVendor(vendor); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor data", err)
		return
	}

	updated, err := vc.vendorService.UpdateVendor(c.Request.Context(), &vendor)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVendor endpoint
func (vc *VendorController) DeleteVendor(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID", err)
		return
	}

	if err := vc.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
