// api/controller/category_controller.go
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

type CategoryController struct {
	categoryService service.ICategoryService
	validationUtil  *util.ValidationUtil
}

func NewCategoryController(categoryService service.ICategoryService, validationUtil *util.ValidationUtil) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		validationUtil:  validationUtil,
	}
}

// RegisterRoutes registers the API routes
func (cc *CategoryController) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	categories := public.Group("/categories")
	{
		categories.GET("", cc.ListCategories)
		categories.GET("/:id", cc.GetCategory)
		categories.GET("/:id/products", cc.ListCategoryProducts)
	}
	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", cc.CreateCategory)
	}
}

// ListCategories endpoint
func (cc *CategoryController) ListCategories(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	categories, err := cc.categoryService.ListCategories(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory endpoint
func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	category, err := cc.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryProducts endpoint
func (cc *CategoryController) ListCategoryProducts(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category ID", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	products, err := cc.categoryService.ListCategoryProducts(c.Request.Context(), id, limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateCategory endpoint
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category data", gw_errors.ErrInvalidCategoryData)
		return
	}
	if err := cc.validationUtil.ValidateCategory(category); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category data", err)
		return
	}

	created, err := cc.categoryService.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
