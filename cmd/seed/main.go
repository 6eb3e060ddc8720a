package main

import (
	"log"
	"os"

	"traderhub-be/internal/model"
	"traderhub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedSuperAdmin(db)
	seedPlans(db)
	seedPlatformConfig(db)

	color.Green("✅ Seeding completed!")
}

func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping super admin seed")
		return
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Super admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing seed admin password: %v", err)
	}
	hashStr := string(hash)

	err = db.Transaction(func(tx *gorm.DB) error {
		user := model.User{Email: email, PasswordHash: &hashStr}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := model.Profile{Id: user.Id, Email: email, Name: "Super Admin"}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		role := model.UserRole{UserId: user.Id, Role: "super_admin"}
		return tx.Create(&role).Error
	})
	if err != nil {
		log.Fatalf("Error seeding super admin: %v", err)
	}
	log.Printf("Created super admin: %s", email)
}

func seedPlans(db *gorm.DB) {
	log.Println("Seeding Plan Catalog...")

	desc := func(s string) *string { return &s }
	plans := []model.Plan{
		{Name: "Starter 5K", Description: desc("Conta de avaliação de R$ 5.000"), Price: 297.00},
		{Name: "Trader 10K", Description: desc("Conta de avaliação de R$ 10.000"), Price: 497.00},
		{Name: "Pro 25K", Description: desc("Conta de avaliação de R$ 25.000"), Price: 897.00},
		{Name: "Elite 50K", Description: desc("Conta de avaliação de R$ 50.000"), Price: 1497.00},
	}

	for _, p := range plans {
		var existing model.Plan
		if err := db.Where("nome_plano = ?", p.Name).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Name)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Name, err)
		} else {
			log.Printf("Created plan: %s", p.Name)
		}
	}
}

func seedPlatformConfig(db *gorm.DB) {
	log.Println("Seeding Platform Config...")

	configs := []model.PlatformConfig{
		{Key: "whatsapp_suporte", Value: "+5511999999999"},
		{Key: "link_plataforma", Value: "https://plataforma.example.com"},
		{Key: "saque_valor_minimo", Value: "50.00"},
	}

	for _, c := range configs {
		var existing model.PlatformConfig
		if err := db.Where("config_key = ?", c.Key).First(&existing).Error; err == nil {
			log.Printf("Config '%s' already exists, skipping...", c.Key)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating config '%s': %v", c.Key, err)
		} else {
			log.Printf("Created config: %s", c.Key)
		}
	}
}
