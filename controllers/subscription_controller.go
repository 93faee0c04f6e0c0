package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type SubscriptionController struct{ Svc *services.SubscriptionService }

func NewSubscriptionController(svc *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Svc: svc}
}

// POST /subscriptions
func (h *SubscriptionController) Subscribe(c *gin.Context) {
	var req services.SubscribeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Subscribe(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /subscriptions
func (h *SubscriptionController) ListForMe(c *gin.Context) {
	subs, err := h.Svc.ListForDiner(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": subs})
}

// PATCH /subscriptions/:id/cancel
func (h *SubscriptionController) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(utils.CurrentUserID(c), uintParam(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.SubscriptionCancelled})
}

// GET /chef/subscriptions
func (h *SubscriptionController) ListForChef(c *gin.Context) {
	subs, err := h.Svc.ListForChef(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": subs})
}

// PATCH /chef/subscriptions/:id/status
func (h *SubscriptionController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(utils.CurrentUserID(c), uintParam(c, "id"), body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}
