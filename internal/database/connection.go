package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// driver ("sqlite" by default, "postgres" with DATABASE_URL).
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	// Create data directory if it doesn't exist
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "readpal.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	// Create user_profiles table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id INTEGER PRIMARY KEY,
			total_words_learned INTEGER DEFAULT 0,
			total_practice_time INTEGER DEFAULT 0,
			accuracy_rate REAL DEFAULT 0,
			level INTEGER DEFAULT 1,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			streak_last_advanced_date TEXT DEFAULT '',
			last_practice_date TEXT DEFAULT '',
			daily_word_goal INTEGER DEFAULT 10,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 17,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_profiles table: %v", err)
	}

	// Create word_progress table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS word_progress (
			id %s,
			user_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			difficulty TEXT DEFAULT 'medium',
			times_practiced INTEGER DEFAULT 0,
			times_correct INTEGER DEFAULT 0,
			mastery_level INTEGER DEFAULT 0,
			last_practiced TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, word)
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create word_progress table: %v", err)
	}

	// Create daily_goals table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS daily_goals (
			id %s,
			user_id INTEGER NOT NULL,
			goal_type TEXT NOT NULL,
			goal_date TEXT NOT NULL,
			target_value INTEGER NOT NULL,
			current_value INTEGER DEFAULT 0,
			completed BOOLEAN DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, goal_type, goal_date)
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create daily_goals table: %v", err)
	}

	// Create learning_sessions table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS learning_sessions (
			id %s,
			user_id INTEGER NOT NULL,
			session_type TEXT NOT NULL,
			words_practiced TEXT DEFAULT '[]',
			correct_count INTEGER DEFAULT 0,
			total_attempts INTEGER DEFAULT 0,
			duration INTEGER DEFAULT 0,
			accuracy REAL DEFAULT 0,
			session_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create learning_sessions table: %v", err)
	}

	// Create achievements table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS achievements (
			id %s,
			user_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			icon TEXT,
			earned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create achievements table: %v", err)
	}

	// Create words catalog table
	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			id %s,
			word TEXT NOT NULL UNIQUE,
			difficulty TEXT DEFAULT 'medium',
			category TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, serial))
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}

	return nil
}
