package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chawalitkim/veritas-lens-project/internal/core"
	"github.com/chawalitkim/veritas-lens-project/internal/driver"
)

type VerifyRequest struct {
	Claim string `json:"claim"`
}

func (s *Server) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.Lens.Verify(c.Request.Context(), req.Claim)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) GetVerification(c *gin.Context) {
	result, err := s.Lens.GetVerification(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) RecentVerifications(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	results, err := s.Lens.RecentVerifications(c.Request.Context(), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verifications": results})
}

func (s *Server) DomainStats(c *gin.Context) {
	stats, err := s.Lens.DomainStats(c.Request.Context(), c.Param("domain"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) Health(c *gin.Context) {
	status := http.StatusOK
	store := "ok"
	if err := s.Lens.Ping(c.Request.Context()); err != nil {
		store = "error"
		status = http.StatusServiceUnavailable
	}

	cacheState := "disabled"
	if s.Cache != nil {
		cacheState = "ok"
		if err := s.Cache.Ping(c.Request.Context()); err != nil {
			// Cache loss degrades performance, not correctness.
			cacheState = "error"
		}
	}

	body := gin.H{"status": "ok", "store": store, "cache": cacheState}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}

// respondError maps pipeline errors onto HTTP statuses and records them for
// the request log line.
func (s *Server) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, core.ErrEmptyClaim):
		c.JSON(http.StatusBadRequest, gin.H{"error": "claim is empty"})
	case errors.Is(err, core.ErrClaimTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "claim exceeds maximum length"})
	case errors.Is(err, core.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "verdict unavailable from model provider"})
	case errors.Is(err, driver.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
