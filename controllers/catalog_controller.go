package controllers

import (
	"CourseCatalog/middlewares"
	"CourseCatalog/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var catalogService *services.CatalogService

func SetCatalogService(service *services.CatalogService) {
	catalogService = service
}

// ListCourses is the public course list, localized to the language resolved
// by the locale middleware.
func ListCourses(c *gin.Context) {
	lang := middlewares.LanguageFromContext(c)

	courses, err := catalogService.ListCourses(lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": lang, "data": courses})
}

func GetCourse(c *gin.Context) {
	lang := middlewares.LanguageFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	course, err := catalogService.GetCourse(uint(id), lang)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": lang, "data": course})
}

// statusForError maps service errors onto HTTP codes for the admin surface.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
