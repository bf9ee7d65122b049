package controllers

import (
	"CourseCatalog/middlewares"
	"CourseCatalog/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var localeService *services.LocaleService

func SetLocaleService(service *services.LocaleService) {
	localeService = service
}

// GetMessages returns all UI strings for the resolved language.
func GetMessages(c *gin.Context) {
	lang := middlewares.LanguageFromContext(c)

	messages, err := localeService.GetAllMessages(lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"language": lang,
		"messages": messages,
	})
}

// UpsertMessage creates or updates one UI string (admin only).
func UpsertMessage(c *gin.Context) {
	var input struct {
		Key          string `json:"key" binding:"required"`
		LanguageCode string `json:"language_code" binding:"required"`
		Value        string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	message, err := localeService.UpsertMessage(input.Key, input.LanguageCode, input.Value)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message saved successfully", "data": message})
}

// DeleteMessage removes one UI string by key and language (admin only).
func DeleteMessage(c *gin.Context) {
	var input struct {
		Key          string `json:"key" binding:"required"`
		LanguageCode string `json:"language_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := localeService.DeleteMessage(input.Key, input.LanguageCode); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
