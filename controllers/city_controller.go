package controllers

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CityController serves the seeded delivery-city lookup used by the
// address form.
type CityController struct {
	DB *gorm.DB
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{DB: db}
}

// GET /cities
func (h *CityController) List(c *gin.Context) {
	var cities []entity.City
	if err := h.DB.Order("name asc").Find(&cities).Error; err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cities)
}
