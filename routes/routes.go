package routes

import (
	"CourseCatalog/config"
	"CourseCatalog/controllers"
	"CourseCatalog/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	languages := config.Languages()
	defaultLanguage := config.DefaultLanguage()

	r.GET("/health", controllers.Health)

	// Public routes; language resolved from ?lang= / Accept-Language.
	public := r.Group("/")
	public.Use(middlewares.LocaleMiddleware(languages, defaultLanguage))
	{
		public.GET("/courses", controllers.ListCourses)
		public.GET("/courses/:id", controllers.GetCourse)
		public.GET("/messages", controllers.GetMessages)
	}

	// Language-prefixed mirrors of the public routes: /en/courses,
	// /ru/courses, ... The prefix pins the language.
	for _, lang := range languages {
		prefixed := r.Group("/" + lang)
		prefixed.Use(middlewares.ForcedLocaleMiddleware(lang))
		{
			prefixed.GET("/courses", controllers.ListCourses)
			prefixed.GET("/courses/:id", controllers.GetCourse)
			prefixed.GET("/messages", controllers.GetMessages)
		}
	}

	r.POST("/auth/register", controllers.RegisterAdmin)
	r.POST("/auth/login", controllers.LoginAdmin)

	// Live catalog change feed.
	r.GET("/ws", controllers.ServeWs)

	// Admin CRUD over courses, translations and UI messages.
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/courses", controllers.CreateCourse)
		admin.GET("/courses", controllers.AdminListCourses)
		admin.GET("/courses/:id", controllers.AdminGetCourse)
		admin.PUT("/courses/:id", controllers.UpdateCourse)
		admin.DELETE("/courses/:id", controllers.DeleteCourse)
		admin.PUT("/courses/:id/translations/:lang", controllers.UpsertCourseTranslation)
		admin.DELETE("/courses/:id/translations/:lang", controllers.DeleteCourseTranslation)

		admin.POST("/messages", controllers.UpsertMessage)
		admin.DELETE("/messages", controllers.DeleteMessage)
	}
}
