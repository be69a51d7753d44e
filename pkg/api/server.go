// Package api exposes the HTTP surface: pipeline status, taxonomy
// administration, events and payments read models, calendar publishing
// and the job endpoints with their SSE progress stream.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/policy"
	"github.com/mailscope/mailscope/pkg/services"
	"github.com/mailscope/mailscope/pkg/taxonomy"
)

// Server holds the handler dependencies.
type Server struct {
	db       *database.Client
	pipeline *services.PipelineService
	jobs     *services.JobService
	taxo     *taxonomy.Service
	policies *policy.Store
}

// NewServer creates a new API server.
func NewServer(db *database.Client, pipeline *services.PipelineService, jobSvc *services.JobService, taxo *taxonomy.Service, policies *policy.Store) *Server {
	if db == nil {
		panic("NewServer: db must not be nil")
	}
	if pipeline == nil {
		panic("NewServer: pipeline must not be nil")
	}
	if jobSvc == nil {
		panic("NewServer: jobSvc must not be nil")
	}
	if taxo == nil {
		panic("NewServer: taxo must not be nil")
	}
	if policies == nil {
		panic("NewServer: policies must not be nil")
	}
	return &Server{
		db:       db,
		pipeline: pipeline,
		jobs:     jobSvc,
		taxo:     taxo,
		policies: policies,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.Health)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", s.GetStatus)

		apiGroup.GET("/labels", s.ListLabels)
		apiGroup.PATCH("/labels/:id", s.UpdateLabel)
		apiGroup.POST("/labels/merge", s.MergeLabels)

		apiGroup.GET("/events/future", s.ListFutureEvents)
		apiGroup.POST("/events/:message_id/publish", s.PublishEvent)
		apiGroup.GET("/events/:message_id/calendar-status", s.CheckEvent)
		apiGroup.POST("/events/:message_id/hide", s.HideEvent)
		apiGroup.POST("/events/:message_id/unhide", s.UnhideEvent)

		apiGroup.GET("/payments/summary", s.PaymentSummary)

		apiGroup.GET("/policies", s.ListPolicies)
		apiGroup.POST("/policies", s.CreatePolicy)
		apiGroup.GET("/policies/:id", s.GetPolicy)
		apiGroup.POST("/policies/:id/enabled", s.SetPolicyEnabled)
		apiGroup.DELETE("/policies/:id", s.DeletePolicy)

		// "current" is accepted as a job id and resolves to the running
		// (or most recent) job.
		apiGroup.POST("/jobs/:kind", s.StartJob)
		apiGroup.GET("/jobs", s.JobHistory)
		apiGroup.GET("/jobs/:id/status", s.JobStatus)
		apiGroup.GET("/jobs/:id/stream", s.StreamJob)
	}
	return r
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
