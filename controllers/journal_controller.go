package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListJournalEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := services.ListJournalEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func CreateJournalEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date    string `json:"date" binding:"required"`
		Title   string `json:"title"`
		Content string `json:"content" binding:"required"`
		Mood    string `json:"mood"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateJournalEntry(uid, body.Date, body.Title, body.Content, body.Mood)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteJournalEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteJournalEntry(uid, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
