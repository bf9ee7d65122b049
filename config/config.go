package config

import (
	"CourseCatalog/models"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDatabase() {
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

	log.Printf("Connecting to database: host=%s user=%s dbname=%s port=%s sslmode=%s",
		host, user, dbname, port, sslmode)

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	DB.AutoMigrate(&models.Course{}, &models.CourseTranslation{}, &models.Message{}, &models.Admin{})
}

// Languages returns the configured language codes, default language first.
func Languages() []string {
	raw := os.Getenv("LANGUAGES")
	if raw == "" {
		raw = "en,ru,kk"
	}

	def := DefaultLanguage()
	languages := []string{def}
	for _, code := range strings.Split(raw, ",") {
		code = strings.TrimSpace(code)
		if code == "" || code == def {
			continue
		}
		languages = append(languages, code)
	}
	return languages
}

func DefaultLanguage() string {
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		return strings.TrimSpace(lang)
	}
	return "en"
}

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key"
	}
	return []byte(secret)
}
