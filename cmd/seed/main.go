// Command seed loads mock employee records and a default admin account
// into the database for local development. Existing employee rows are
// replaced; the admin account is created only when missing.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hr_backend/internal/config"
	userentity "hr_backend/internal/feature/auth/domain/entity"
	"hr_backend/internal/feature/employees/domain/entity"
	infradb "hr_backend/internal/platform/db"
)

// seedEmployee mirrors the JSON shape of the mock data file.
type seedEmployee struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Age        int     `json:"age"`
	Salary     float64 `json:"salary"`
	Address    string  `json:"address"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Education  string  `json:"education"`
	Status     string  `json:"status"`
}

func main() {
	file := flag.String("file", "cmd/seed/mock-data.json", "path to the mock employee JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	db := infradb.OpenDB(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	admin := seedAdmin(ctx, db)

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("failed to read mock data:", err)
	}
	var rows []seedEmployee
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatal("failed to parse mock data:", err)
	}

	employees := make([]entity.Employee, 0, len(rows))
	for _, r := range rows {
		status := entity.Status(r.Status)
		if !status.Valid() {
			status = entity.DefaultStatus
		}
		employees = append(employees, entity.Employee{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Age:         r.Age,
			Salary:      r.Salary,
			Address:     r.Address,
			Position:    r.Position,
			Department:  r.Department,
			Education:   r.Education,
			Status:      status,
			AddedByID:   admin.ID,
			AddedByName: admin.Name,
		})
	}

	if err := db.WithContext(ctx).Where("1 = 1").Delete(&entity.Employee{}).Error; err != nil {
		log.Fatal("failed to clear employees:", err)
	}
	if err := db.WithContext(ctx).Create(&employees).Error; err != nil {
		log.Fatal("failed to insert employees:", err)
	}
	log.Printf("seeded %d employees", len(employees))
}

// seedAdmin ensures an administrator account exists and returns it.
// Credentials come from ADMIN_NAME / ADMIN_EMAIL / ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, db *gorm.DB) *userentity.User {
	name := envOr("ADMIN_NAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "changeme123")

	var existing userentity.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("admin %q already present", email)
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash admin password:", err)
	}
	admin := userentity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		AvatarURL:    userentity.DefaultAvatarURL,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin:", err)
	}
	log.Printf("created admin %q", email)
	return &admin
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
