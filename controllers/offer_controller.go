package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type OfferController struct{ Offers *services.OfferService }

func NewOfferController(offers *services.OfferService) *OfferController {
	return &OfferController{Offers: offers}
}

// POST /partner/offers
func (oc *OfferController) Create(c *gin.Context) {
	var req services.CreateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := oc.Offers.Create(utils.CurrentVenueID(c), &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /partner/offers
func (oc *OfferController) List(c *gin.Context) {
	items, err := oc.Offers.List(utils.CurrentVenueID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
