package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct{ Catalog *services.CatalogService }

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GET /menu returns the venue's public menu.
func (cc *CatalogController) Menu(c *gin.Context) {
	items, err := cc.Catalog.Menu(utils.CurrentVenueID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /partner/categories
func (cc *CatalogController) Categories(c *gin.Context) {
	items, err := cc.Catalog.Categories(utils.CurrentVenueID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /partner/categories
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := cc.Catalog.CreateCategory(utils.CurrentVenueID(c), &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, cat)
}

// POST /partner/products
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Catalog.CreateProduct(utils.CurrentVenueID(c), &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /partner/products/:id
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Catalog.UpdateProduct(utils.CurrentVenueID(c), c.Param("id"), &req); err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
