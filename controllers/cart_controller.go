package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	itemID := uintParam(c, "id")
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), itemID, body.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID := uintParam(c, "id")
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
