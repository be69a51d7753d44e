package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/jobs"
	"github.com/mailscope/mailscope/pkg/services"
)

// streamKeepAlive is how often an SSE comment is written so proxies do
// not drop an idle stream.
const streamKeepAlive = 15 * time.Second

// StartJob handles POST /api/jobs/:kind. Jobs are single-flight: while
// one runs, further starts are rejected with the running job's id.
func (s *Server) StartJob(c *gin.Context) {
	kind := jobs.Kind(c.Param("kind"))

	id, err := s.jobs.Start(kind)
	switch {
	case errors.Is(err, jobs.ErrJobRunning):
		c.JSON(http.StatusConflict, gin.H{
			"error":  "a job is already running",
			"job_id": id,
		})
	case errors.Is(err, services.ErrUnknownKind):
		badRequest(c, err.Error())
	case err != nil:
		badRequest(c, err.Error())
	default:
		c.JSON(http.StatusAccepted, gin.H{"job_id": id})
	}
}

// JobHistory handles GET /api/jobs.
func (s *Server) JobHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": s.jobs.Registry().History()})
}

// JobStatus handles GET /api/jobs/:id/status. The id "current" resolves
// to the running job.
func (s *Server) JobStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "current" {
		st, ok := s.jobs.Registry().Current()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no job is running"})
			return
		}
		c.JSON(http.StatusOK, st)
		return
	}

	st, err := s.jobs.Registry().Status(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// StreamJob handles GET /api/jobs/:id/stream as server-sent events. The
// subscription starts with a snapshot, then streams every update until
// the job reaches a terminal state or the client goes away.
func (s *Server) StreamJob(c *gin.Context) {
	id := c.Param("id")
	if id == "current" {
		st, ok := s.jobs.Registry().Current()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no job is running"})
			return
		}
		id = st.JobID
	}

	updates, cancel, err := s.jobs.Registry().Subscribe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("status", st)
			return !st.State.Terminal()
		case <-keepAlive.C:
			// SSE comment, ignored by clients.
			_, _ = w.Write([]byte(": keep-alive\n\n"))
			return true
		case <-clientGone:
			return false
		}
	})
}
