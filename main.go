package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hamzadaoud/rouge-perle-gestion/routes"
	"github.com/hamzadaoud/rouge-perle-gestion/services/cafe"
	"github.com/hamzadaoud/rouge-perle-gestion/services/identity"
	"github.com/hamzadaoud/rouge-perle-gestion/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store
	kv := initStore()

	// Services
	identitySvc := identity.New(kv)
	cafeSvc := cafe.New(kv, identitySvc)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, identitySvc, cafeSvc)

	// Start backup routine at 2 AM daily, keep 4 days of snapshots
	if backupDir := os.Getenv("BACKUP_DIR"); backupDir != "" {
		go startDailyBackupAtFixedTime(kv, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks Postgres when a database is configured and falls back
// to the in-memory store for single-tenant demo runs.
func initStore() store.Store {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			log.Println("ℹ️ No database configured, using in-memory store")
			return store.NewMemoryStore()
		}
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	kv, err := store.NewGormStore(db)
	if err != nil {
		log.Fatalf("❌ Store migration failed: %v", err)
	}
	return kv
}

// startDailyBackupAtFixedTime dumps every collection to timestamped
// JSON files at a fixed hour and removes old snapshot folders.
func startDailyBackupAtFixedTime(kv store.Store, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next store backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := dumpCollections(kv, destDir); err != nil {
			log.Printf("❌ Failed to back up store: %v", err)
		} else {
			log.Printf("✅ Store backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// dumpCollections writes each stored collection as <key>.json.
func dumpCollections(kv store.Store, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}
	for _, key := range store.Keys {
		raw, found, err := kv.Raw(key)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		path := filepath.Join(destDir, key+".json")
		if err := os.WriteFile(path, raw, 0644); err != nil {
			return err
		}
	}
	return nil
}

// cleanupOldBackups removes snapshot folders older than retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
