package server

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/calendar"
)

type generateRequest struct {
	PostsPerWeek int    `json:"posts_per_week"`
	WeekOf       string `json:"week_of"` // YYYY-MM-DD; defaults to next week
}

// generateCalendar loads the company's roster, runs the engine and persists
// the result. Validation failures come back as 422; soft-constraint
// warnings ride along with the 201.
func (s *Server) generateCalendar(c *gin.Context) {
	companyID := c.Param("id")
	company, err := s.store.GetCompany(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PostsPerWeek == 0 {
		req.PostsPerWeek = s.defaultPostsPerWeek
	}

	anchor := time.Now().AddDate(0, 0, 7)
	if req.WeekOf != "" {
		anchor, err = time.Parse("2006-01-02", req.WeekOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week_of must be YYYY-MM-DD"})
			return
		}
	}

	personas, err := s.store.ListPersonas(companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	subreddits, err := s.store.ListSubreddits(companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	topics, err := s.store.ListTopics(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	gen := calendar.New(s.provider, rand.New(rand.NewSource(time.Now().UnixNano())))
	result, err := gen.Generate(c.Request.Context(), calendar.Request{
		Company:      *company,
		Personas:     personas,
		Subreddits:   subreddits,
		Topics:       topics,
		PostsPerWeek: req.PostsPerWeek,
		WeekAnchor:   anchor,
	})
	if err != nil {
		var verr *calendar.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Msg})
			return
		}
		respondError(c, err)
		return
	}

	if err := s.store.SaveCalendar(&result.Calendar, result.Posts); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[server] generated calendar %s for company %s: %d posts, score %.1f, %d warnings",
		result.Calendar.ID, company.Name, len(result.Posts), result.QualityScore, len(result.Warnings))
	c.JSON(http.StatusCreated, result)
}

func (s *Server) listCalendars(c *gin.Context) {
	calendars, err := s.store.ListCalendars(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendars": calendars})
}

func (s *Server) listCalendarPosts(c *gin.Context) {
	if _, err := s.store.GetCalendar(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	posts, err := s.store.ListPosts(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
