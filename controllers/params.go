package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func uintParam(c *gin.Context, name string) uint {
	v, _ := strconv.Atoi(c.Param(name))
	return uint(v)
}
