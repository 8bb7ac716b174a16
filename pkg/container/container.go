package container

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"library-catalog/internal/config"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"
	bookRepo "library-catalog/internal/domains/book/repository"
	genreHandler "library-catalog/internal/domains/genre/handler"
	genreRepo "library-catalog/internal/domains/genre/repository"
	genreService "library-catalog/internal/domains/genre/service"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/web"
	"library-catalog/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config    *config.Config
	DB        *database.PostgresDB
	Templates *template.Template

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo authorRepo.RepositoryInterface
	GenreRepo  genreRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService authorService.ServiceInterface
	GenreService  genreService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler *authorHandler.AuthorHandler
	GenreHandler  *genreHandler.GenreHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole graph in dependency order:
// config, database, templates, repositories, services, handlers.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE DATABASE
	// ========================================
	logger.Debug("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(cfg.DBConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	c.DB = db
	logger.Info("✅ Database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"database": cfg.Database.Name,
	})

	// ========================================
	// STEP 2: PARSE TEMPLATES
	// ========================================
	tmpl, err := web.Templates()
	if err != nil {
		c.Cleanup()
		return nil, err
	}
	c.Templates = tmpl

	// ========================================
	// STEP 3: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("🎉 DI Container initialized successfully", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// Both services read books to fill detail pages and to block deletes
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
}

// Cleanup releases the resources held by the container. Called on shutdown.
func (c *Container) Cleanup() {
	logger.Debug("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Debug("✅ Container cleanup completed")
}
