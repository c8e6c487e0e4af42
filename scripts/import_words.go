// Bulk word import tool.
//
// Reads a YAML file of dictionary entries and inserts any word whose Shona
// form is not already present. Meant for seeding a fresh database or loading
// batches prepared by editors.
//
// Usage: go run scripts/import_words.go path/to/words.yaml

package main

import (
	"log"
	"os"

	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/model"
	"shona_dict_backend/pkg/database"
	"shona_dict_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

type importEntry struct {
	Shona        string   `yaml:"shona"`
	English      string   `yaml:"english"`
	Definition   string   `yaml:"definition"`
	PartOfSpeech string   `yaml:"partOfSpeech"`
	Examples     []string `yaml:"examples"`
	Tags         []string `yaml:"tags"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/import_words.go <words.yaml>")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, &cfg.Admin)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("cannot read word file: %v", err)
	}

	var entries []importEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("cannot parse word file: %v", err)
	}

	var imported, skipped int
	for _, e := range entries {
		if e.Shona == "" || e.English == "" {
			log.Printf("skipping entry with missing shona or english: %+v", e)
			skipped++
			continue
		}

		var count int64
		if err := db.Model(&model.Word{}).Where("shona = ?", e.Shona).Count(&count).Error; err != nil {
			log.Fatalf("lookup failed for %q: %v", e.Shona, err)
		}
		if count > 0 {
			skipped++
			continue
		}

		word := model.Word{
			Shona:        e.Shona,
			English:      e.English,
			Definition:   e.Definition,
			PartOfSpeech: e.PartOfSpeech,
			Examples:     e.Examples,
			Tags:         e.Tags,
		}
		if err := db.Create(&word).Error; err != nil {
			log.Fatalf("insert failed for %q: %v", e.Shona, err)
		}
		imported++
	}

	log.Printf("done: %d imported, %d skipped", imported, skipped)
}
