package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/readpal/internal/database"
	"github.com/example/readpal/internal/notify"
	"github.com/example/readpal/internal/scheduler"
	"github.com/example/readpal/internal/wordlist"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	importPath := flag.String("import", "", "import a word list (xlsx or csv) and exit")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importPath != "" {
		runImport(*importPath)
		return
	}

	// Reminders need a Telegram token; without one only the streak sweep runs
	var notifier scheduler.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		n, err := notify.NewTelegramNotifier(token)
		if err != nil {
			log.Fatalf("Failed to create notifier: %v", err)
		}
		notifier = n
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, goal reminders disabled")
	}

	sched := scheduler.New(notifier)
	sched.Start()
	defer sched.Stop()

	log.Println("Maintenance scheduler started. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}

// runImport loads a practice word list into the catalog
func runImport(path string) {
	config := wordlist.DefaultImportConfig()
	config.FilePath = path

	result, err := wordlist.ImportWords(context.Background(), config)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import finished: %d processed, %d created, %d updated",
		result.TotalProcessed, result.Created, result.Updated)
	for _, importErr := range result.Errors {
		log.Printf("  %s", importErr)
	}
}
