package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders — checkout the current cart
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Checkout(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForDiner(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	o, err := h.Svc.DetailForDiner(utils.CurrentUserID(c), uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	err := h.Svc.Cancel(utils.CurrentUserID(c), utils.CurrentRole(c), uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.OrderCancelled})
}

// DELETE /orders/:id — soft delete for the requesting party
func (h *OrderController) SoftDelete(c *gin.Context) {
	err := h.Svc.SoftDelete(utils.CurrentUserID(c), utils.CurrentRole(c), uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// DELETE /orders/:id/permanent — owning diner only
func (h *OrderController) HardDelete(c *gin.Context) {
	err := h.Svc.HardDelete(utils.CurrentUserID(c), uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
