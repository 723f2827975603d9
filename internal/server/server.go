// Package server exposes the HTTP API: roster CRUD, CSV import and calendar
// generation.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/generator"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/store"
)

// Server wires the store and the LLM provider into gin handlers.
type Server struct {
	store               *store.Store
	provider            generator.Provider
	defaultPostsPerWeek int
}

// New creates a Server. provider may be nil; generation then always uses the
// template path.
func New(st *store.Store, provider generator.Provider, defaultPostsPerWeek int) *Server {
	if defaultPostsPerWeek < 1 {
		defaultPostsPerWeek = 7
	}
	return &Server{
		store:               st,
		provider:            provider,
		defaultPostsPerWeek: defaultPostsPerWeek,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/companies", s.createCompany)
		api.GET("/companies", s.listCompanies)
		api.GET("/companies/:id", s.getCompany)
		api.DELETE("/companies/:id", s.deleteCompany)

		api.POST("/companies/:id/personas", s.createPersona)
		api.GET("/companies/:id/personas", s.listPersonas)
		api.DELETE("/personas/:id", s.deletePersona)

		api.POST("/companies/:id/subreddits", s.createSubreddit)
		api.GET("/companies/:id/subreddits", s.listSubreddits)
		api.DELETE("/subreddits/:id", s.deleteSubreddit)

		api.POST("/companies/:id/topics", s.createTopic)
		api.GET("/companies/:id/topics", s.listTopics)
		api.DELETE("/topics/:id", s.deleteTopic)

		api.POST("/companies/:id/import/:kind", s.importCSV)

		api.POST("/companies/:id/calendars", s.generateCalendar)
		api.GET("/companies/:id/calendars", s.listCalendars)
		api.GET("/calendars/:id/posts", s.listCalendarPosts)
	}

	return r
}

// respondError writes a uniform JSON error, mapping ErrNotFound to 404.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
