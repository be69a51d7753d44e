package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/models"
)

// GetStatus handles GET /api/status.
func (s *Server) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	checkpoints := s.pipeline.Checkpoints()
	messages := s.pipeline.Messages()

	phase, err := checkpoints.CurrentPhase(ctx)
	if err != nil {
		serverError(c, err)
		return
	}
	resp := models.StatusResponse{Phase: phase}

	if wm, ok, err := checkpoints.Watermark(ctx); err != nil {
		serverError(c, err)
		return
	} else if ok {
		resp.Checkpoint = &wm
	}

	if resp.LatestInternalDate, err = messages.LatestInternalDate(ctx); err != nil {
		serverError(c, err)
		return
	}
	if resp.TotalMessages, err = messages.CountTotal(ctx); err != nil {
		serverError(c, err)
		return
	}
	if resp.LabelledMessages, err = messages.CountLabelled(ctx); err != nil {
		serverError(c, err)
		return
	}
	if resp.UnlabelledMessages, err = messages.CountUnlabelled(ctx); err != nil {
		serverError(c, err)
		return
	}
	if resp.Clusters, err = messages.CountClusters(ctx); err != nil {
		serverError(c, err)
		return
	}
	if resp.PendingArchive, err = s.pipeline.Planner().CountPendingArchive(ctx); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
