// scripts/create_warden.go — one-shot seed of an initial warden account.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/config"
	"github.com/g-67560126-commits/e-Asrama/database"
	"github.com/g-67560126-commits/e-Asrama/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	username := envOr("SEED_WARDEN_USERNAME", "warden1")
	password := envOr("SEED_WARDEN_PASSWORD", "warden123")
	name := envOr("SEED_WARDEN_NAME", "Warden Bertugas")
	phone := envOr("SEED_WARDEN_PHONE", "-")

	var existing models.Warden
	if err := db.Where("LOWER(username) = LOWER(?)", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("query wardens: %v", err)
		}
	} else {
		fmt.Println("warden already exists with username:", username)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	w := models.Warden{
		Name:         name,
		Phone:        phone,
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&w).Error; err != nil {
		log.Fatalf("insert warden: %v", err)
	}

	fmt.Println("warden account created")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(plain, change after first login)")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
