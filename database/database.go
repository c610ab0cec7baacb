package database

import (
	"fmt"
	"log"

	config "github.com/virtuixrw/backend/configs"
	"github.com/virtuixrw/backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.PendingDeposit{},
		&models.Deposit{},
		&models.TokenTier{},
		&models.UserToken{},
		&models.ScheduledPayout{},
		&models.Referral{},
		&models.Withdrawal{},
		&models.CheckIn{},
		&models.Room{},
		&models.RoomMembership{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the admin account from environment configuration.
// Deposit confirmation and withdrawal processing are gated on this role
// server-side; no credential ever ships to a client.
func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}
	if err := DB.Create(&models.Wallet{UserID: adminUser.ID}).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin wallet: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}

type seedTier struct {
	name         string
	colors       string
	price        float64
	requiredTier string
}

var tokenCatalog = []seedTier{
	{"Black & White", "B_W", 5000, models.TierBasic},
	{"Black & White", "B_W", 9000, models.TierBasic},
	{"Black & Blue", "B_BL", 12000, models.TierBasic},
	{"White & Black", "W_B", 25000, models.TierBasic},
	{"White & Green", "W_G", 35000, models.TierBasic},
	{"White & Blue", "W_BL", 50000, models.TierBasic},
	{"Black & Black", "B_B", 80000, models.TierPremium},
	{"Green & Green", "G_G", 150000, models.TierPremium},
	{"Orange & Orange", "O_O", 250000, models.TierPremium},
	{"Brown & Brown", "BR_BR", 350000, models.TierPremium},
	{"Red & Red", "R_R", 500000, models.TierPremium},
	{"White & White", "W_W", 1000000, models.TierPremium},
	{"W-O-G Tri-Color", "W_O_G", 2500000, models.TierVerified},
}

// SeedTokenTiers loads the fixed token catalog. Daily return is 12% of the
// purchase price across the board.
func SeedTokenTiers() {
	var count int64
	if err := DB.Model(&models.TokenTier{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check token catalog: %v", err)
	}
	if count > 0 {
		return
	}

	for _, t := range tokenCatalog {
		tier := models.TokenTier{
			Name:         t.name,
			Colors:       t.colors,
			Price:        t.price,
			DailyReturn:  t.price * 0.12,
			RequiredTier: t.requiredTier,
		}
		if err := DB.Create(&tier).Error; err != nil {
			log.Fatalf("🔥 Failed to seed token catalog: %v", err)
		}
	}
	log.Printf("✅ Token catalog seeded (%d tiers)", len(tokenCatalog))
}
