package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListSavedItems(c *gin.Context) {
	uid := c.GetUint("userID")

	items, err := services.ListSavedItems(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func SaveItem(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		ItemType string `json:"item_type" binding:"required"`
		ItemID   uint   `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.SaveItem(uid, body.ItemType, body.ItemID)
	if err != nil {
		if err == services.ErrConflict {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func PauseSavedItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body struct {
		IsPaused bool `json:"is_paused"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.SetItemPaused(uid, id, body.IsPaused)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteSavedItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteSavedItem(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
