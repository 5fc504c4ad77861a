package wordlist

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/readpal/internal/database"
	"github.com/example/readpal/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	WordColumn       string // Column with the word
	DifficultyColumn string // Column with the difficulty (easy/medium/hard)
	CategoryColumn   string // Column with the category
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:       "A",
		DifficultyColumn: "B",
		CategoryColumn:   "C",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Errors         []string
}

// ImportWords imports practice words from an Excel or CSV word list into the
// catalog
func ImportWords(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(ctx, config)
	}
	return importFromExcel(ctx, config)
}

// importFromExcel imports words from an Excel file
func importFromExcel(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		var word, difficulty, category string
		if colIdx := columnToIndex(config.WordColumn); colIdx >= 0 && colIdx < len(row) {
			word = row[colIdx]
		}
		if colIdx := columnToIndex(config.DifficultyColumn); colIdx >= 0 && colIdx < len(row) {
			difficulty = row[colIdx]
		}
		if colIdx := columnToIndex(config.CategoryColumn); colIdx >= 0 && colIdx < len(row) {
			category = row[colIdx]
		}

		result.TotalProcessed++
		if err := importEntry(ctx, wordRepo, word, difficulty, category, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports words from a CSV file with word,difficulty,category
// columns
func importFromCSV(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	wordRepo := database.NewWordRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		var word, difficulty, category string
		if len(row) > 0 {
			word = row[0]
		}
		if len(row) > 1 {
			difficulty = row[1]
		}
		if len(row) > 2 {
			category = row[2]
		}

		result.TotalProcessed++
		if err := importEntry(ctx, wordRepo, word, difficulty, category, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// importEntry validates and upserts one catalog entry
func importEntry(ctx context.Context, wordRepo *database.WordRepository, word, difficulty, category string, result *ImportResult) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}

	created, err := wordRepo.Upsert(ctx, &models.Word{
		Word:       word,
		Difficulty: normalizeDifficulty(difficulty),
		Category:   strings.ToLower(strings.TrimSpace(category)),
	})
	if err != nil {
		return fmt.Errorf("failed to save word: %v", err)
	}

	if created {
		result.Created++
	} else {
		result.Updated++
	}
	return nil
}

// normalizeDifficulty maps free-form difficulty cells onto the three tags,
// defaulting to medium
func normalizeDifficulty(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case models.DifficultyEasy, "1":
		return models.DifficultyEasy
	case models.DifficultyHard, "3":
		return models.DifficultyHard
	default:
		return models.DifficultyMedium
	}
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
