package controllers

import (
	"strconv"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(svc *services.DishService) *DishController { return &DishController{Svc: svc} }

// GET /dishes?type=&cuisine=&chefId=
func (h *DishController) List(c *gin.Context) {
	var f repository.DishFilter
	f.Type = c.Query("type")
	f.Cuisine = c.Query("cuisine")
	if v, err := strconv.Atoi(c.Query("chefId")); err == nil {
		f.ChefID = uint(v)
	}
	dishes, err := h.Svc.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /dishes/:id
func (h *DishController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /chef/dishes
func (h *DishController) ListMine(c *gin.Context) {
	dishes, err := h.Svc.List(repository.DishFilter{ChefID: utils.CurrentUserID(c)})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// POST /chef/dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /chef/dishes/:id
func (h *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := h.Svc.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /chef/dishes/:id
func (h *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /dishes/:id/favorite
func (h *DishController) ToggleFavorite(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	fav, err := h.Svc.ToggleFavorite(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": fav})
}

// GET /profile/favorites
func (h *DishController) ListFavorites(c *gin.Context) {
	dishes, err := h.Svc.ListFavorites(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}
