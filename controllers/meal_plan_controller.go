package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type MealPlanController struct{ Svc *services.MealPlanService }

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Svc: svc}
}

// GET /meal-plans
func (h *MealPlanController) List(c *gin.Context) {
	plans, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": plans})
}

// GET /meal-plans/:id
func (h *MealPlanController) Get(c *gin.Context) {
	p, err := h.Svc.Get(uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /chef/meal-plans
func (h *MealPlanController) ListMine(c *gin.Context) {
	plans, err := h.Svc.ListByChef(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": plans})
}

// POST /chef/meal-plans
func (h *MealPlanController) Create(c *gin.Context) {
	var req services.MealPlanIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /chef/meal-plans/:id
func (h *MealPlanController) Update(c *gin.Context) {
	var req services.MealPlanIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.Update(utils.CurrentUserID(c), uintParam(c, "id"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /chef/meal-plans/:id
func (h *MealPlanController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(utils.CurrentUserID(c), uintParam(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
