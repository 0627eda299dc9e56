package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"

	"library-backend/internal/domains/author"
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"

	"library-backend/internal/domains/genre"
	genreHandler "library-backend/internal/domains/genre/handler"
	genreRepo "library-backend/internal/domains/genre/repository"
	genreService "library-backend/internal/domains/genre/service"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	"library-backend/internal/domains/reader"
	readerHandler "library-backend/internal/domains/reader/handler"
	readerRepo "library-backend/internal/domains/reader/repository"
	readerService "library-backend/internal/domains/reader/service"

	"library-backend/internal/domains/borrowing"
	borrowingHandler "library-backend/internal/domains/borrowing/handler"
	borrowingRepo "library-backend/internal/domains/borrowing/repository"
	borrowingService "library-backend/internal/domains/borrowing/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo    author.Repository
	GenreRepo     genre.Repository
	BookRepo      book.Repository
	ReaderRepo    reader.Repository
	BorrowingRepo borrowing.Repository

	AuthorService    author.Service
	GenreService     genre.Service
	BookService      book.Service
	ReaderService    reader.Service
	BorrowingService borrowing.Service

	AuthorHandler    *authorHandler.AuthorHandler
	GenreHandler     *genreHandler.GenreHandler
	BookHandler      *bookHandler.BookHandler
	ReaderHandler    *readerHandler.ReaderHandler
	BorrowingHandler *borrowingHandler.BorrowingHandler
}

// NewContainer builds and wires the whole application.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// A cold cache degrades reads but does not break them, so a Redis
		// outage at startup is a warning, not a fatal error.
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.GenreRepo = genreRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ReaderRepo = readerRepo.NewPostgresRepository(db.Pool)
	c.BorrowingRepo = borrowingRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.GenreRepo)
	c.ReaderService = readerService.NewReaderService(c.ReaderRepo)
	c.BorrowingService = borrowingService.NewBorrowingService(c.BorrowingRepo, c.ReaderRepo, c.BookRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ReaderHandler = readerHandler.NewReaderHandler(c.ReaderService)
	c.BorrowingHandler = borrowingHandler.NewBorrowingHandler(c.BorrowingService)

	log.Println("[CONTAINER] Initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}

	log.Println("[CONTAINER] Cleaned up")
}
