package main

import (
	"context"
	"log"

	"github.com/fatih/color"

	"course-assist-be/internal/bootstrap"
	"course-assist-be/internal/config"
	"course-assist-be/internal/constant"
	"course-assist-be/pkg/database"
)

// Rebuilds the course-materials index from the configured document store.
// Run this after uploading or replacing source documents.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	color.Cyan("Rebuilding index from document store (%s)...", cfg.Docs.Kind)

	res, err := container.IngestionService.Rebuild(context.Background())
	if err != nil {
		color.Red("Rebuild failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Rebuild complete: %d chunks indexed from %d sources", res.ChunksIndexed, res.SourcesProcessed)

	stats, err := container.IngestionService.Stats(context.Background(), constant.NamespaceCourseMaterials)
	if err == nil {
		color.Green("Namespace %s now holds %d vectors", stats.Namespace, stats.VectorCount)
	}
}
