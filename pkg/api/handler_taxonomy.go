package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/taxonomy"
)

// ListLabels handles GET /api/labels.
func (s *Server) ListLabels(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	rows, err := s.taxo.ListLabels(c.Request.Context(), includeInactive)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": rows})
}

// UpdateLabelRequest is the PATCH body; nil fields are left unchanged.
type UpdateLabelRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	RetentionDays  *int    `json:"retention_days"`
	ClearRetention bool    `json:"clear_retention"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateLabel handles PATCH /api/labels/:id.
func (s *Server) UpdateLabel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "label id must be an integer")
		return
	}
	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.RetentionDays != nil && *req.RetentionDays <= 0 {
		badRequest(c, "retention_days must be positive")
		return
	}

	row, err := s.taxo.UpdateLabel(c.Request.Context(), id, labelUpdateFrom(req))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func labelUpdateFrom(req UpdateLabelRequest) taxonomy.LabelUpdate {
	return taxonomy.LabelUpdate{
		Name:           req.Name,
		Description:    req.Description,
		RetentionDays:  req.RetentionDays,
		ClearRetention: req.ClearRetention,
		IsActive:       req.IsActive,
	}
}

// MergeLabelsRequest names the source and destination labels.
type MergeLabelsRequest struct {
	FromID int `json:"from_id" binding:"required"`
	ToID   int `json:"to_id" binding:"required"`
}

// MergeLabels handles POST /api/labels/merge. All assignments move to the
// destination label and the source is deactivated; the affected messages
// are enqueued for a provider label push.
func (s *Server) MergeLabels(c *gin.Context) {
	var req MergeLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	moved, err := s.taxo.MergeLabels(c.Request.Context(), req.FromID, req.ToID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from_id":           req.FromID,
		"to_id":             req.ToID,
		"moved_assignments": moved,
	})
}
