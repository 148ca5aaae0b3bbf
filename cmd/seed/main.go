// Command seed prepares a development database: schema, the admin account
// and a starter catalog. Existing rows are kept.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/domain"
	"servicehub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	seedAdmin(ctx, db)
	seedServices(ctx, db)
	seedDemoUsers(ctx, db)
	log.Println("Seed complete")
}

func seedAdmin(ctx context.Context, db *gorm.DB) {
	users := repository.NewUserRepository(db)

	if _, err := users.GetByUsername(ctx, "admin"); err == nil {
		log.Println("Admin account already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	err = users.CreateWithProfile(ctx, &domain.User{
		Username:     "admin",
		Email:        "admin@servicehub.local",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}, nil, nil)
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Println("Created admin account (admin/admin123)")
}

func seedServices(ctx context.Context, db *gorm.DB) {
	services := repository.NewServiceRepository(db)

	starter := []domain.Service{
		{ServiceType: "Plumbing", Description: "Pipe repair and installation", BasePrice: 100},
		{ServiceType: "Cleaning", Description: "Home and office cleaning", BasePrice: 80},
		{ServiceType: "Electrical", Description: "Wiring and appliance work", BasePrice: 120},
	}

	for _, svc := range starter {
		if _, err := services.GetByType(ctx, svc.ServiceType); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("lookup service %s: %v", svc.ServiceType, err)
		}

		s := svc
		if err := services.Create(ctx, &s); err != nil {
			log.Fatalf("create service %s: %v", svc.ServiceType, err)
		}
		log.Printf("Created service %s", svc.ServiceType)
	}
}

// seedDemoUsers creates one customer and one already-verified professional for
// local experimentation.
func seedDemoUsers(ctx context.Context, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	services := repository.NewServiceRepository(db)

	plumbing, err := services.GetByType(ctx, "Plumbing")
	if err != nil {
		log.Fatalf("lookup plumbing service: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	demo := []struct {
		user         domain.User
		customer     *domain.Customer
		professional *domain.Professional
	}{
		{
			user: domain.User{
				Username: "demo_customer",
				Email:    "customer@servicehub.local",
				Role:     domain.RoleCustomer,
				Address:  "12 Demo Street",
				Pin:      "560001",
			},
			customer: &domain.Customer{},
		},
		{
			user: domain.User{
				Username: "demo_professional",
				Email:    "professional@servicehub.local",
				Role:     domain.RoleProfessional,
				Address:  "34 Demo Avenue",
				Pin:      "560002",
			},
			professional: &domain.Professional{
				ServiceID:   plumbing.ID,
				Description: "Seeded demo professional",
				Experience:  5,
				IsVerified:  true,
			},
		},
	}

	for _, d := range demo {
		if _, err := users.GetByUsername(ctx, d.user.Username); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("lookup %s: %v", d.user.Username, err)
		}

		u := d.user
		u.PasswordHash = string(hash)
		u.IsActive = true
		if err := users.CreateWithProfile(ctx, &u, d.customer, d.professional); err != nil {
			log.Fatalf("create %s: %v", d.user.Username, err)
		}
		log.Printf("Created %s (password secret123)", d.user.Username)
	}
}
