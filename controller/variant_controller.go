// api/controller/variant_controller.go
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

type VariantController struct {
	variantService service.IVariantService
}

func NewVariantController(variantService service.IVariantService) *VariantController {
	return &VariantController{variantService: variantService}
}

// RegisterRoutes registers the API routes. Variant reads are public catalog
// data; writes need admin.
func (vc *VariantController) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	public.GET("/products/:id/variants", vc.ListVariants)
	public.GET("/variants/:id", vc.GetVariant)

	admin.POST("/products/:id/variants", vc.CreateVariant)
	admin.PUT("/variants/:id", vc.UpdateVariant)
	admin.DELETE("/variants/:id", vc.DeleteVariant)
}

// ListVariants endpoint
func (vc *VariantController) ListVariants(c *gin.Context) {
	productID, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	variants, err := vc.variantService.ListVariants(c.Request.Context(), productID, limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// GetVariant endpoint
func (vc *VariantController) GetVariant(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant ID", err)
		return
	}

	variant, err := vc.variantService.GetVariant(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

// CreateVariant endpoint
func (vc *VariantController) CreateVariant(c *gin.Context) {
	productID, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var variant model.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant data", gw_errors.ErrInvalidVariantData)
		return
	}
	if variant.SKU == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant data", gw_errors.ErrInvalidVariantData)
		return
	}

	created, err := vc.variantService.CreateVariant(c.Request.Context(), productID, &variant)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVariant endpoint
func (vc *VariantController) UpdateVariant(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant ID", err)
		return
	}

	var variant model.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant data", gw_errors.ErrInvalidVariantData)
		return
	}
	variant.ID = id

	updated, err := vc.variantService.UpdateVariant(c.Request.Context(), &variant)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVariant endpoint
func (vc *VariantController) DeleteVariant(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid variant ID", err)
		return
	}

	if err := vc.variantService.DeleteVariant(c.Request.Context(), id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
