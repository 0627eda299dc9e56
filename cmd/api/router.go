package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupGenreRoutes(api, c)
		setupBookRoutes(api, c)
		setupReaderRoutes(api, c)
		setupBorrowingRoutes(api, c)
	}

	return router
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		// The author's catalog lives with the book handler to keep the
		// dependency direction book -> author.
		authors.GET("/:id/books", c.BookHandler.ListByAuthor)
	}
}

func setupGenreRoutes(api *gin.RouterGroup, c *container.Container) {
	genres := api.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.POST("", c.GenreHandler.Create)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.DELETE("/:id", c.GenreHandler.Delete)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.GetByID)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.POST("/:id/replenish", c.BookHandler.Replenish)
	}
}

func setupReaderRoutes(api *gin.RouterGroup, c *container.Container) {
	readers := api.Group("/readers")
	{
		readers.GET("", c.ReaderHandler.List)
		readers.POST("", c.ReaderHandler.Create)
		readers.GET("/:id", c.ReaderHandler.GetByID)
		// Loan history lives with the borrowing handler, same reasoning as
		// the author/books route.
		readers.GET("/:id/borrowings", c.BorrowingHandler.ListByReader)
	}
}

func setupBorrowingRoutes(api *gin.RouterGroup, c *container.Container) {
	borrowings := api.Group("/borrowings")
	{
		borrowings.GET("", c.BorrowingHandler.List)
		borrowings.POST("", c.BorrowingHandler.Create)
		borrowings.GET("/:id", c.BorrowingHandler.GetByID)
		borrowings.POST("/:id/return", c.BorrowingHandler.Return)
		borrowings.PATCH("/:id", c.BorrowingHandler.Edit)
		borrowings.DELETE("/:id", c.BorrowingHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
