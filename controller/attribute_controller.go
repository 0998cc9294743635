// api/controller/attribute_controller.go
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

type AttributeController struct {
	attributeService service.IAttributeService
}

func NewAttributeController(attributeService service.IAttributeService) *AttributeController {
	return &AttributeController{attributeService: attributeService}
}

// RegisterRoutes registers the API routes. Attribute reads are public catalog
// data; writes need admin.
func (ac *AttributeController) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	attributes := public.Group("/attributes")
	{
		attributes.GET("", ac.ListAttributes)
		attributes.GET("/:id", ac.GetAttribute)
		attributes.GET("/:id/values", ac.ListAttributeValues)
	}
	adminAttributes := admin.Group("/attributes")
	{
		adminAttributes.POST("", ac.CreateAttribute)
		adminAttributes.PUT("/:id", ac.UpdateAttribute)
		adminAttributes.DELETE("/:id", ac.DeleteAttribute)
		adminAttributes.POST("/:id/values", ac.CreateAttributeValue)
		adminAttributes.DELETE("/:id/values/:valueId", ac.DeleteAttributeValue)
	}
}

// ListAttributes endpoint
func (ac *AttributeController) ListAttributes(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	attributes, err := ac.attributeService.ListAttributes(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, attributes)
}

// GetAttribute endpoint
func (ac *AttributeController) GetAttribute(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}

	attribute, err := ac.attributeService.GetAttribute(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, attribute)
}

// CreateAttribute endpoint
func (ac *AttributeController) CreateAttribute(c *gin.Context) {
	var attribute model.Attribute
	if err := c.ShouldBindJSON(&attribute); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", gw_errors.ErrInvalidAttributeData)
		return
	}
	if attribute.Name == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", gw_errors.ErrInvalidAttributeData)
		return
	}

	created, err := ac.attributeService.CreateAttribute(c.Request.Context(), &attribute)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAttribute endpoint
func (ac *AttributeController) UpdateAttribute(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}

	var attribute model.Attribute
	if err := c.ShouldBindJSON(&attribute); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute data", gw_errors.ErrInvalidAttributeData)
		return
	}
	attribute.ID = id

	updated, err := ac.attributeService.UpdateAttribute(c.Request.Context(), &attribute)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAttribute endpoint
func (ac *AttributeController) DeleteAttribute(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}

	if err := ac.attributeService.DeleteAttribute(c.Request.Context(), id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAttributeValues endpoint
func (ac *AttributeController) ListAttributeValues(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	values, err := ac.attributeService.ListAttributeValues(c.Request.Context(), id, limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// CreateAttributeValue endpoint
func (ac *AttributeController) CreateAttributeValue(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}

	var value model.AttributeValue
	if err := c.ShouldBindJSON(&value); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute value data", gw_errors.ErrInvalidAttributeData)
		return
	}
	if value.Name == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute value data", gw_errors.ErrInvalidAttributeData)
		return
	}

	created, err := ac.attributeService.CreateAttributeValue(c.Request.Context(), id, &value)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteAttributeValue endpoint
func (ac *AttributeController) DeleteAttributeValue(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute ID", err)
		return
	}
	valueID, err := helper_util.GetUintParam(c, "valueId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attribute value ID", err)
		return
	}

	if err := ac.attributeService.DeleteAttributeValue(c.Request.Context(), id, valueID); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
