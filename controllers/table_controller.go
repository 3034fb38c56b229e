package controllers

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/pkg/resp"
	"github.com/RodriLang/food-ordering-API-sub001/repository"
	"github.com/RodriLang/food-ordering-API-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TableController is thin owner plumbing: tables only change at setup time.
type TableController struct{ Tables *repository.TableRepository }

func NewTableController(tables *repository.TableRepository) *TableController {
	return &TableController{Tables: tables}
}

// POST /partner/tables
func (tc *TableController) Create(c *gin.Context) {
	var req struct {
		Number int `json:"number" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.DiningTable{
		PublicID: uuid.NewString(),
		Number:   req.Number,
		ScanCode: uuid.NewString(),
		VenueID:  utils.CurrentVenueID(c),
	}
	if err := tc.Tables.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /partner/tables
func (tc *TableController) List(c *gin.Context) {
	items, err := tc.Tables.ListForVenue(utils.CurrentVenueID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
