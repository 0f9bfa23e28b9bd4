package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetDashboardOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	overview, err := services.GetDashboardOverview(uid, date)
	if err != nil {
		if verr := services.ValidateDate(date); verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
