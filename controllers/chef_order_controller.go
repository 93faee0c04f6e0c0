package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ChefOrderController covers the chef's side of the order book: the
// incoming-orders view and fulfilment status changes.
type ChefOrderController struct{ Svc *services.OrderService }

func NewChefOrderController(svc *services.OrderService) *ChefOrderController {
	return &ChefOrderController{Svc: svc}
}

// GET /chef/orders
func (h *ChefOrderController) List(c *gin.Context) {
	items, err := h.Svc.ListForChef(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /chef/orders/:id/status
func (h *ChefOrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AdvanceStatus(utils.CurrentUserID(c), uintParam(c, "id"), body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}
