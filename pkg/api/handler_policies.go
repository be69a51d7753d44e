package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/policy"
)

// ListPolicies handles GET /api/policies.
func (s *Server) ListPolicies(c *gin.Context) {
	rows, err := s.policies.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": rows})
}

// GetPolicy handles GET /api/policies/:id.
func (s *Server) GetPolicy(c *gin.Context) {
	row, err := s.policies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// CreatePolicyRequest is the POST body. Trigger type and cadence default
// to scheduled/weekly when omitted.
type CreatePolicyRequest struct {
	Name        string            `json:"name" binding:"required"`
	Enabled     *bool             `json:"enabled"`
	TriggerType string            `json:"trigger_type"`
	Cadence     string            `json:"cadence"`
	Definition  policy.Definition `json:"definition" binding:"required"`
}

// CreatePolicy handles POST /api/policies. The definition is validated
// before anything is stored, so a rejected policy leaves no row behind.
func (s *Server) CreatePolicy(c *gin.Context) {
	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	switch req.TriggerType {
	case "", "scheduled", "on_ingest":
	default:
		badRequest(c, "trigger_type must be scheduled or on_ingest")
		return
	}
	switch req.Cadence {
	case "", "daily", "weekly", "monthly":
	default:
		badRequest(c, "cadence must be daily, weekly or monthly")
		return
	}
	if err := req.Definition.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	row, err := s.policies.Create(c.Request.Context(), policy.CreateInput{
		Name:        req.Name,
		Disabled:    req.Enabled != nil && !*req.Enabled,
		TriggerType: req.TriggerType,
		Cadence:     req.Cadence,
		Definition:  req.Definition,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// SetPolicyEnabledRequest carries the new enabled flag.
type SetPolicyEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetPolicyEnabled handles POST /api/policies/:id/enabled.
func (s *Server) SetPolicyEnabled(c *gin.Context) {
	var req SetPolicyEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	row, err := s.policies.SetEnabled(c.Request.Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeletePolicy handles DELETE /api/policies/:id. Messages the policy
// already trashed keep their audit trail.
func (s *Server) DeletePolicy(c *gin.Context) {
	if err := s.policies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
