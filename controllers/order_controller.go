package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Orders *services.OrderService }

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := oc.Orders.Create(utils.CurrentVenueID(c), &req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	res, err := oc.Orders.Detail(utils.CurrentVenueID(c), c.Param("id"))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /sessions/:id/orders
func (oc *OrderController) ListForSession(c *gin.Context) {
	items, err := oc.Orders.ListForSession(utils.CurrentVenueID(c), c.Param("id"))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ----- Line items -----

// POST /orders/:id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	var req services.OrderItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := oc.Orders.AddItem(utils.CurrentVenueID(c), c.Param("id"), req)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.Created(c, res)
}

// PATCH /orders/:id/items/:itemId
func (oc *OrderController) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := oc.Orders.UpdateItemQuantity(
		utils.CurrentVenueID(c), c.Param("id"), c.Param("itemId"), req.Quantity)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, res)
}

// DELETE /orders/:id/items/:itemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	err := oc.Orders.RemoveItem(utils.CurrentVenueID(c), c.Param("id"), c.Param("itemId"))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// ----- Staff transitions -----

func (oc *OrderController) Approve(c *gin.Context)  { oc.transition(c, oc.Orders.Approve) }
func (oc *OrderController) Start(c *gin.Context)    { oc.transition(c, oc.Orders.Start) }
func (oc *OrderController) Complete(c *gin.Context) { oc.transition(c, oc.Orders.Complete) }
func (oc *OrderController) Serve(c *gin.Context)    { oc.transition(c, oc.Orders.Serve) }
func (oc *OrderController) Cancel(c *gin.Context)   { oc.transition(c, oc.Orders.Cancel) }

func (oc *OrderController) transition(c *gin.Context, fn func(uint, string) (*services.OrderRes, error)) {
	res, err := fn(utils.CurrentVenueID(c), c.Param("id"))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, res)
}
