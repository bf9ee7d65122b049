// scripts/seed_courses.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"CourseCatalog/models"
)

// The sample catalog, from TestDriven.io.
var sampleCourses = []models.CourseTranslation{
	{
		Title:       "Test-Driven Development with Python, Flask, and Docker",
		Description: "In this course, you'll learn how to set up a development environment with Docker in order to build and deploy a microservice powered by Python and Flask. You'll also apply the practices of Test-Driven Development with pytest as you develop a RESTful API.",
		Date:        "2021-07-17",
		Price:       30.00,
	},
	{
		Title:       "Building Your Own Python Web Framework",
		Description: "In this course, you'll learn how to develop your own Python web framework to see how all the magic works beneath the scenes in Flask, Django, and the other Python-based web frameworks.",
		Date:        "2021-03-02",
		Price:       25.00,
	},
	{
		Title:       "Developing a Real-Time Taxi App with Django Channels and Angular",
		Description: "Learn how to create a ride-sharing app with Django Channels, Angular, and Docker. Along the way, you'll learn how to manage client/server communication with Django Channels, control flow and routing with Angular, and build a RESTful API with Django REST Framework.",
		Date:        "2020-12-17",
		Price:       40.00,
	},
	{
		Title:       "Learn Vue by Building and Deploying a CRUD App",
		Description: "This course is focused on teaching the fundamentals of Vue by building and testing a web application using Test-Driven Development (TDD).",
		Date:        "2021-06-28",
		Price:       40.00,
	},
	{
		Title:       "The Definitive Guide to Celery and Django",
		Description: "Learn how to add Celery to a Django application to provide asynchronous task processing.",
		Date:        "2021-04-05",
		Price:       30.00,
	},
}

var defaultMessages = map[string]string{
	"catalog.title":       "Course Catalog",
	"catalog.empty":       "No courses available yet.",
	"course.price_label":  "Price",
	"course.date_label":   "Starts on",
	"course.details_link": "View course",
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	db, err := openDatabase()
	if err != nil {
		fmt.Println("Failed to connect to database:", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Course{}, &models.CourseTranslation{}, &models.Message{}, &models.Admin{}); err != nil {
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}

	lang := os.Getenv("DEFAULT_LANGUAGE")
	if lang == "" {
		lang = "en"
	}

	seeded := 0
	for _, sample := range sampleCourses {
		var count int64
		if err := db.Model(&models.CourseTranslation{}).Where("title = ?", sample.Title).Count(&count).Error; err != nil {
			fmt.Println("Failed to check existing courses:", err)
			os.Exit(1)
		}
		if count > 0 {
			fmt.Printf("Skipping %q, already seeded\n", sample.Title)
			continue
		}

		course := models.Course{
			Translations: []models.CourseTranslation{{
				LanguageCode: lang,
				Title:        sample.Title,
				Description:  sample.Description,
				Date:         sample.Date,
				Price:        sample.Price,
			}},
		}
		if err := db.Create(&course).Error; err != nil {
			fmt.Println("Failed to seed course:", err)
			os.Exit(1)
		}
		seeded++
	}

	for key, value := range defaultMessages {
		var count int64
		if err := db.Model(&models.Message{}).Where("key = ? AND language_code = ?", key, lang).Count(&count).Error; err != nil {
			fmt.Println("Failed to check existing messages:", err)
			os.Exit(1)
		}
		if count > 0 {
			continue
		}
		message := models.Message{Key: key, LanguageCode: lang, Value: value}
		if err := db.Create(&message).Error; err != nil {
			fmt.Println("Failed to seed message:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d courses.\n", seeded)
	fmt.Println("Completed!!! Check your database.")
}

func openDatabase() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "course_catalog"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		if strings.Contains(host, "render.com") {
			sslmode = "require"
		} else {
			sslmode = "disable"
		}
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
