package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListAdminContent(c *gin.Context) {
	content, err := services.ListAdminContent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

func CreateAdminContent(c *gin.Context) {
	var input services.AdminContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := services.CreateAdminContent(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, content)
}

func UpdateAdminContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.AdminContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := services.UpdateAdminContent(id, input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

func DeleteAdminContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteAdminContent(id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}

func ListSubscriptions(c *gin.Context) {
	subs, err := services.ListSubscriptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func UpdateSubscription(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body struct {
		Plan      string     `json:"plan"`
		Status    string     `json:"status"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := services.UpdateSubscription(id, body.Plan, body.Status, body.ExpiresAt)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}
