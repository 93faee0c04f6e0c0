package controllers

import (
	"strconv"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// GET /profile/addresses
func (h *ProfileController) ListAddresses(c *gin.Context) {
	out, err := h.Svc.ListAddresses(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /profile/addresses
func (h *ProfileController) AddAddress(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.AddAddress(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /profile/addresses/:id
func (h *ProfileController) UpdateAddress(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.UpdateAddress(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /profile/addresses/:id
func (h *ProfileController) DeleteAddress(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteAddress(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
