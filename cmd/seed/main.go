package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"noteful/internal/config"
	"noteful/internal/domain/models"
	"noteful/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the YAML shape consumed by -fixtures.
type fixtureFile struct {
	Folders []fixtureFolder `yaml:"folders"`
	Notes   []fixtureNote   `yaml:"notes"`
}

type fixtureFolder struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type fixtureNote struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Modified time.Time `yaml:"modified"`
	Folder   string    `yaml:"folder"`
	Content  string    `yaml:"content"`
}

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop both tables before setting up schema (fresh start)")
	fixtures := flag.String("fixtures", "", "Path to a YAML fixture file to load after schema setup")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Setting up schema (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	if err := ensureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}
	log.Println("Schema ready")

	if *fixtures == "" {
		return
	}

	if err := loadFixtures(ctx, pool, tables, *fixtures, logger); err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}
	log.Printf("Fixtures loaded from %s", *fixtures)
}

func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	for _, table := range []string{tables.Notes, tables.Folders} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	folderSchema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)
	`, tables.Folders)

	// No foreign key on folder_id: folders and notes are independent and no
	// cascading rule is defined between them.
	noteSchema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id        TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			modified  TIMESTAMPTZ NOT NULL,
			folder_id TEXT NOT NULL,
			content   TEXT NOT NULL
		)
	`, tables.Notes)

	if _, err := pool.Exec(ctx, folderSchema); err != nil {
		return fmt.Errorf("create folders table: %w", err)
	}
	if _, err := pool.Exec(ctx, noteSchema); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

func loadFixtures(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, path string, logger *slog.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	noteRepo := postgres.NewNoteRepository(repoConfig)

	for _, f := range file.Folders {
		folder := &models.Folder{ID: f.ID, Name: f.Name}
		if _, err := folderRepo.Insert(ctx, folder); err != nil {
			return fmt.Errorf("insert folder %s: %w", f.ID, err)
		}
	}

	for _, n := range file.Notes {
		note := &models.Note{
			ID:       n.ID,
			Name:     n.Name,
			Modified: n.Modified,
			FolderID: n.Folder,
			Content:  n.Content,
		}
		if _, err := noteRepo.Insert(ctx, note); err != nil {
			return fmt.Errorf("insert note %s: %w", n.ID, err)
		}
	}

	logger.Info("fixtures loaded",
		"folders", len(file.Folders),
		"notes", len(file.Notes),
	)
	return nil
}
