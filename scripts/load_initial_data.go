package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seating-planner-backend/internal/config"
	"seating-planner-backend/internal/database"
	"seating-planner-backend/internal/database/models"
	"seating-planner-backend/internal/repository"
	"seating-planner-backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizerData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type TableData struct {
	OrganizerEmail string   `yaml:"organizer_email"`
	Name           string   `yaml:"name"`
	Capacity       int      `yaml:"capacity,omitempty"`
	X              *float64 `yaml:"x,omitempty"`
	Y              *float64 `yaml:"y,omitempty"`
}

type GuestData struct {
	OrganizerEmail string `yaml:"organizer_email"`
	FirstName      string `yaml:"first_name"`
	LastName       string `yaml:"last_name"`
	Status         string `yaml:"status,omitempty"`
	TableName      string `yaml:"table_name,omitempty"`
}

// File structures
type OrganizersFile struct {
	Organizers []OrganizerData `yaml:"organizers"`
}

type TablesFile struct {
	Tables []TableData `yaml:"tables"`
}

type GuestsFile struct {
	Guests []GuestData `yaml:"guests"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM's "record not found" noise from the existence checks
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var organizersFile OrganizersFile
	if err := loadYAMLFiles(dataDir, "organizers", &organizersFile); err != nil {
		return fmt.Errorf("failed to load organizers: %w", err)
	}
	var tablesFile TablesFile
	if err := loadYAMLFiles(dataDir, "tables", &tablesFile); err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}
	var guestsFile GuestsFile
	if err := loadYAMLFiles(dataDir, "guests", &guestsFile); err != nil {
		return fmt.Errorf("failed to load guests: %w", err)
	}

	// Create organizers first, every table and guest belongs to one
	organizerMap := make(map[string]*models.User)
	organizerCreated := 0
	for _, organizerData := range organizersFile.Organizers {
		user, created, err := createOrganizer(db, organizerData)
		if err != nil {
			return fmt.Errorf("failed to create organizer %s: %w", organizerData.Email, err)
		}
		organizerMap[user.Email] = user
		if created {
			organizerCreated++
		}
	}
	log.Printf("📋 Organizers: %d created, %d total", organizerCreated, len(organizersFile.Organizers))

	// Create tables, keyed by owner and normalized name
	tableMap := make(map[string]*models.Table)
	tableCreated := 0
	for _, tableData := range tablesFile.Tables {
		owner, ok := organizerMap[normalizeEmail(tableData.OrganizerEmail)]
		if !ok {
			log.Printf("⚠️  Warning: table %s references unknown organizer %s", tableData.Name, tableData.OrganizerEmail)
			continue
		}
		table, created, err := createTable(db, tableData, owner)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create table %s: %v", tableData.Name, err)
			continue // Continue with other tables
		}
		tableMap[tableKey(owner, table.Name)] = table
		if created {
			tableCreated++
		}
	}
	log.Printf("📋 Tables: %d created, %d total", tableCreated, len(tablesFile.Tables))

	// Create guests and seat them
	guestCreated := 0
	for _, guestData := range guestsFile.Guests {
		owner, ok := organizerMap[normalizeEmail(guestData.OrganizerEmail)]
		if !ok {
			log.Printf("⚠️  Warning: guest %s %s references unknown organizer %s", guestData.FirstName, guestData.LastName, guestData.OrganizerEmail)
			continue
		}
		_, created, err := createGuest(db, guestData, owner, tableMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create guest %s %s: %v", guestData.FirstName, guestData.LastName, err)
			continue // Continue with other guests
		}
		if created {
			guestCreated++
		}
	}
	log.Printf("📋 Guests: %d created, %d total", guestCreated, len(guestsFile.Guests))

	return nil
}

// loadYAMLFiles decodes every .yaml file under dataDir whose path contains
// kind into out, appending list entries across files
func loadYAMLFiles(dataDir, kind string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, out); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createOrganizer(db *gorm.DB, organizerData OrganizerData) (*models.User, bool, error) {
	email := normalizeEmail(organizerData.Email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return &user, false, nil // created = false (existing)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query organizer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(organizerData.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user = models.User{Email: email, PasswordHash: string(hash)}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID, Email: email, Role: models.RoleSuperUser}).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create organizer: %w", err)
	}
	return &user, true, nil
}

func createTable(db *gorm.DB, tableData TableData, owner *models.User) (*models.Table, bool, error) {
	var table models.Table
	err := db.Where("owner_id = ? AND lower(trim(name)) = ?", owner.ID, models.TableNameKey(tableData.Name)).First(&table).Error
	if err == nil {
		return &table, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query table: %w", err)
	}

	capacity := tableData.Capacity
	if capacity == 0 {
		capacity = service.DefaultTableCapacity
	}
	if err := service.NewValidator().Var(tableData.Name, "tablename"); err != nil {
		return nil, false, fmt.Errorf("invalid table name %q", tableData.Name)
	}

	table = models.Table{
		Name:     strings.TrimSpace(tableData.Name),
		Capacity: capacity,
	}
	table.OwnerID = owner.ID
	if tableData.X != nil && tableData.Y != nil {
		table.Position = models.Position{X: *tableData.X, Y: *tableData.Y}
	}

	if err := db.Create(&table).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create table: %w", err)
	}
	return &table, true, nil
}

func createGuest(db *gorm.DB, guestData GuestData, owner *models.User, tableMap map[string]*models.Table) (*models.Guest, bool, error) {
	var guest models.Guest
	err := db.Where("owner_id = ? AND lower(trim(first_name)) = ? AND lower(trim(last_name)) = ?",
		owner.ID,
		strings.ToLower(strings.TrimSpace(guestData.FirstName)),
		strings.ToLower(strings.TrimSpace(guestData.LastName)),
	).First(&guest).Error
	if err == nil {
		return &guest, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query guest: %w", err)
	}

	status := models.GuestStatus(guestData.Status)
	if status == "" {
		status = models.GuestStatusNoResponse
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", guestData.Status)
	}

	guest = models.Guest{
		FirstName: strings.TrimSpace(guestData.FirstName),
		LastName:  strings.TrimSpace(guestData.LastName),
		Status:    status,
	}
	guest.OwnerID = owner.ID

	if guestData.TableName != "" {
		table, ok := tableMap[tableKey(owner, guestData.TableName)]
		if !ok {
			return nil, false, fmt.Errorf("unknown table %q", guestData.TableName)
		}
		guest.SetTable(table)
	}

	// The repository reserves the seat under a row lock
	if err := repository.NewGuestRepository(db).Create(context.Background(), &guest); err != nil {
		return nil, false, fmt.Errorf("failed to create guest: %w", err)
	}
	return &guest, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func tableKey(owner *models.User, name string) string {
	return owner.ID.String() + "/" + models.TableNameKey(name)
}
