package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/importer"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

func (s *Server) createCompany(c *gin.Context) {
	var company types.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if company.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := s.store.CreateCompany(&company); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (s *Server) listCompanies(c *gin.Context) {
	companies, err := s.store.ListCompanies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (s *Server) getCompany(c *gin.Context) {
	company, err := s.store.GetCompany(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (s *Server) deleteCompany(c *gin.Context) {
	if err := s.store.DeleteCompany(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createPersona(c *gin.Context) {
	companyID, ok := s.requireCompany(c)
	if !ok {
		return
	}

	var p types.Persona
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Name == "" || p.RedditUsername == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and reddit_username are required"})
		return
	}
	if !types.ValidTone(p.Tone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tone"})
		return
	}

	p.CompanyID = companyID
	if err := s.store.CreatePersona(&p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) listPersonas(c *gin.Context) {
	personas, err := s.store.ListPersonas(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"personas": personas})
}

func (s *Server) deletePersona(c *gin.Context) {
	if err := s.store.DeletePersona(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createSubreddit(c *gin.Context) {
	companyID, ok := s.requireCompany(c)
	if !ok {
		return
	}

	var sub types.Subreddit
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sub.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	sub.CompanyID = companyID
	if err := s.store.CreateSubreddit(&sub); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) listSubreddits(c *gin.Context) {
	subs, err := s.store.ListSubreddits(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subreddits": subs})
}

func (s *Server) deleteSubreddit(c *gin.Context) {
	if err := s.store.DeleteSubreddit(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createTopic(c *gin.Context) {
	companyID, ok := s.requireCompany(c)
	if !ok {
		return
	}

	var t types.Topic
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if t.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if !types.ValidIntent(t.Intent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intent"})
		return
	}

	t.CompanyID = companyID
	if err := s.store.CreateTopic(&t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) listTopics(c *gin.Context) {
	topics, err := s.store.ListTopics(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (s *Server) deleteTopic(c *gin.Context) {
	if err := s.store.DeleteTopic(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// importCSV handles CSV uploads for any roster kind. The file arrives as
// multipart form field "file".
func (s *Server) importCSV(c *gin.Context) {
	companyID, ok := s.requireCompany(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	defer file.Close()

	var imported int
	var rowErrs []importer.RowError

	switch c.Param("kind") {
	case "personas":
		personas, errs, err := importer.Personas(file, companyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rowErrs = errs
		for i := range personas {
			if err := s.store.CreatePersona(&personas[i]); err != nil {
				respondError(c, err)
				return
			}
			imported++
		}
	case "subreddits":
		subs, errs, err := importer.Subreddits(file, companyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rowErrs = errs
		for i := range subs {
			if err := s.store.CreateSubreddit(&subs[i]); err != nil {
				respondError(c, err)
				return
			}
			imported++
		}
	case "topics":
		topics, errs, err := importer.Topics(file, companyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rowErrs = errs
		for i := range topics {
			if err := s.store.CreateTopic(&topics[i]); err != nil {
				respondError(c, err)
				return
			}
			imported++
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be personas, subreddits or topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported, "errors": rowErrs})
}

func (s *Server) requireCompany(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := s.store.GetCompany(id); err != nil {
		respondError(c, err)
		return "", false
	}
	return id, true
}
