// api/controller/product_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solistore/gateway/api/dao"
	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
	helper_util "github.com/solistore/gateway/api/util/helper"
)

type ProductController struct {
	productService service.IProductService
	validationUtil *util.ValidationUtil
}

func NewProductController(productService service.IProductService, validationUtil *util.ValidationUtil) *ProductController {
	return &ProductController{
		productService: productService,
		validationUtil: validationUtil,
	}
}

// RegisterRoutes registers the API routes. Catalog reads are public; writes
// go through the admin group.
func (pc *ProductController) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	products := public.Group("/products")
	{
		products.GET("", pc.ListProducts)
		products.GET("/:id", pc.GetProduct)
	}
	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", pc.CreateProduct)
		adminProducts.PUT("/:id", pc.UpdateProduct)
		adminProducts.DELETE("/:id", pc.DeleteProduct)
	}
}

// ListProducts endpoint
func (pc *ProductController) ListProducts(c *gin.Context) {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}

	products, err := pc.productService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct endpoint
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := pc.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct endpoint
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", gw_errors.ErrInvalidProductData)
		return
	}
	if err := pc.validationUtil.ValidateProduct(product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct endpoint
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", gw_errors.ErrInvalidProductData)
		return
	}
	product.ID = id
	if err := pc.validationUtil.ValidateProduct(product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), &product)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct endpoint
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if err := pc.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFilterFromQuery(c *gin.Context) (dao.ProductFilter, error) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		return dao.ProductFilter{}, err
	}

	filter := dao.ProductFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("category_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return dao.ProductFilter{}, err
		}
		filter.CategoryID = uint(v)
	}
	if raw := c.Query("vendor_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return dao.ProductFilter{}, err
		}
		filter.VendorID = uint(v)
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dao.ProductFilter{}, err
		}
		filter.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dao.ProductFilter{}, err
		}
		filter.MaxPrice = v
	}
	return filter, nil
}
