package controllers

import (
	"CourseCatalog/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateCourse creates a course with one or more translations.
func CreateCourse(c *gin.Context) {
	var input struct {
		Translations []services.CourseTranslationInput `json:"translations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	course, err := catalogService.CreateCourse(input.Translations)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Course created successfully", "data": course})
}

// AdminListCourses returns every course with all of its translations.
func AdminListCourses(c *gin.Context) {
	courses, err := catalogService.CourseRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": courses})
}

func AdminGetCourse(c *gin.Context) {
	id, ok := courseIDParam(c)
	if !ok {
		return
	}

	course, err := catalogService.CourseRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": course})
}

// UpdateCourse upserts the submitted translations of an existing course.
func UpdateCourse(c *gin.Context) {
	id, ok := courseIDParam(c)
	if !ok {
		return
	}

	var input struct {
		Translations []services.CourseTranslationInput `json:"translations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	course, err := catalogService.UpdateCourse(id, input.Translations)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course updated successfully", "data": course})
}

func DeleteCourse(c *gin.Context) {
	id, ok := courseIDParam(c)
	if !ok {
		return
	}

	if err := catalogService.DeleteCourse(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

// UpsertCourseTranslation creates or replaces a single language of a course.
func UpsertCourseTranslation(c *gin.Context) {
	id, ok := courseIDParam(c)
	if !ok {
		return
	}
	lang := c.Param("lang")

	// The language comes from the URL, not the payload.
	var input struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		Date        string  `json:"date" binding:"required"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	translation, err := catalogService.UpsertTranslation(id, lang, services.CourseTranslationInput{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Price:       input.Price,
	})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Translation saved successfully", "data": translation})
}

func DeleteCourseTranslation(c *gin.Context) {
	id, ok := courseIDParam(c)
	if !ok {
		return
	}
	lang := c.Param("lang")

	if err := catalogService.DeleteTranslation(id, lang); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Translation deleted successfully"})
}

func courseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return 0, false
	}
	return uint(id), true
}
