package controllers

import (
	"CourseCatalog/middlewares"
	"CourseCatalog/models"
	"CourseCatalog/repositories/mocks"
	"CourseCatalog/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupCatalogTestRouter(mockRepo *mocks.CourseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	languages := []string{"en", "ru"}
	SetCatalogService(services.NewCatalogService(mockRepo, languages, "en"))

	router := gin.New()

	public := router.Group("/")
	public.Use(middlewares.LocaleMiddleware(languages, "en"))
	{
		public.GET("/courses", ListCourses)
		public.GET("/courses/:id", GetCourse)
	}

	for _, lang := range languages {
		prefixed := router.Group("/" + lang)
		prefixed.Use(middlewares.ForcedLocaleMiddleware(lang))
		{
			prefixed.GET("/courses", ListCourses)
		}
	}

	return router
}

func TestListCoursesEndpoint(t *testing.T) {
	mockRepo := new(mocks.CourseRepository)
	router := setupCatalogTestRouter(mockRepo)

	mockRepo.On("FindAll").Return([]models.Course{
		{
			ID: 1,
			Translations: []models.CourseTranslation{
				{CourseID: 1, LanguageCode: "en", Title: "TDD with Python", Date: "2021-07-17", Price: 30},
			},
		},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Language string                   `json:"language"`
		Data     []models.LocalizedCourse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "en", response.Language)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "TDD with Python", response.Data[0].Title)
}

func TestListCoursesLanguagePrefixPinsLanguage(t *testing.T) {
	mockRepo := new(mocks.CourseRepository)
	router := setupCatalogTestRouter(mockRepo)

	mockRepo.On("FindAll").Return([]models.Course{
		{
			ID: 1,
			Translations: []models.CourseTranslation{
				{CourseID: 1, LanguageCode: "en", Title: "TDD with Python", Date: "2021-07-17", Price: 30},
				{CourseID: 1, LanguageCode: "ru", Title: "TDD на Python", Date: "2021-07-17", Price: 30},
			},
		},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ru/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Language string                   `json:"language"`
		Data     []models.LocalizedCourse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ru", response.Language)
	assert.Equal(t, "TDD на Python", response.Data[0].Title)
}

func TestGetCourseInvalidID(t *testing.T) {
	mockRepo := new(mocks.CourseRepository)
	router := setupCatalogTestRouter(mockRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseNotFoundEndpoint(t *testing.T) {
	mockRepo := new(mocks.CourseRepository)
	router := setupCatalogTestRouter(mockRepo)

	mockRepo.On("FindByID", uint(42)).Return(models.Course{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/courses/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
