package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLocaleTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LocaleMiddleware([]string{"en", "ru", "kk"}, "en"))
	router.GET("/lang", func(c *gin.Context) {
		c.String(http.StatusOK, LanguageFromContext(c))
	})
	return router
}

func TestLocaleMiddlewareQueryParamWins(t *testing.T) {
	router := setupLocaleTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/lang?lang=ru", nil)
	req.Header.Set("Accept-Language", "kk")
	router.ServeHTTP(w, req)

	assert.Equal(t, "ru", w.Body.String())
}

func TestLocaleMiddlewareIgnoresUnsupportedQueryParam(t *testing.T) {
	router := setupLocaleTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/lang?lang=de", nil)
	req.Header.Set("Accept-Language", "ru")
	router.ServeHTTP(w, req)

	assert.Equal(t, "ru", w.Body.String())
}

func TestLocaleMiddlewareMatchesAcceptLanguage(t *testing.T) {
	router := setupLocaleTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/lang", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.5")
	router.ServeHTTP(w, req)

	assert.Equal(t, "ru", w.Body.String())
}

func TestLocaleMiddlewareFallsBackToDefault(t *testing.T) {
	router := setupLocaleTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/lang", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "en", w.Body.String())
}

func TestForcedLocaleMiddlewarePinsLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/kk")
	group.Use(ForcedLocaleMiddleware("kk"))
	group.GET("/lang", func(c *gin.Context) {
		c.String(http.StatusOK, LanguageFromContext(c))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/kk/lang", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "kk", w.Body.String())
}
