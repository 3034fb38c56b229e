package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/services"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Payments *services.PaymentService }

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /payments/settle
// Idempotent: replaying a settled command returns the original result.
func (pc *PaymentController) Settle(c *gin.Context) {
	var cmd services.SettleCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := pc.Payments.Settle(utils.CurrentVenueID(c), &cmd)
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /payments/:id
func (pc *PaymentController) Detail(c *gin.Context) {
	res, err := pc.Payments.Detail(utils.CurrentVenueID(c), c.Param("id"))
	if err != nil {
		resp.Domain(c, err)
		return
	}
	resp.OK(c, res)
}
