package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/models"
)

// ListFutureEvents handles GET /api/events/future. When calendar
// publishing is configured, stale publish statuses are refreshed first
// (best-effort) so the response reflects what is actually on the
// calendar.
func (s *Server) ListFutureEvents(c *gin.Context) {
	ctx := c.Request.Context()
	includeHidden := c.Query("include_hidden") == "true"
	limit := intQuery(c, "limit", 0)

	store := s.pipeline.Extracts()
	rows, err := store.ListFutureEvents(ctx, includeHidden, limit)
	if err != nil {
		serverError(c, err)
		return
	}

	if pub := s.pipeline.Publisher(); pub != nil && len(rows) > 0 {
		pub.SyncStatuses(ctx, rows)
		// Re-read so refreshed statuses are in the response.
		rows, err = store.ListFutureEvents(ctx, includeHidden, limit)
		if err != nil {
			serverError(c, err)
			return
		}
	}

	resp := make([]models.FutureEventResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, models.FutureEventFrom(r))
	}
	c.JSON(http.StatusOK, gin.H{
		"events":           resp,
		"calendar_enabled": s.pipeline.Publisher() != nil,
	})
}

// PublishEvent handles POST /api/events/:message_id/publish.
func (s *Server) PublishEvent(c *gin.Context) {
	pub := s.pipeline.Publisher()
	if pub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar publishing is not configured"})
		return
	}
	res, err := pub.Publish(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PublishResponse{
		MessageID:       res.MessageID,
		ICalUID:         res.ICalUID,
		CalendarEventID: res.CalendarEventID,
		AlreadyExisted:  res.AlreadyExisted,
		PublishedAt:     res.PublishedAt,
	})
}

// CheckEvent handles GET /api/events/:message_id/calendar-status.
func (s *Server) CheckEvent(c *gin.Context) {
	pub := s.pipeline.Publisher()
	if pub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar publishing is not configured"})
		return
	}
	res, err := pub.Check(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message_id":        res.MessageID,
		"ical_uid":          res.ICalUID,
		"exists":            res.Exists,
		"calendar_event_id": res.CalendarEventID,
		"checked_at":        res.CheckedAt,
	})
}

// HideEvent handles POST /api/events/:message_id/hide.
func (s *Server) HideEvent(c *gin.Context) {
	s.setEventHidden(c, true)
}

// UnhideEvent handles POST /api/events/:message_id/unhide.
func (s *Server) UnhideEvent(c *gin.Context) {
	s.setEventHidden(c, false)
}

func (s *Server) setEventHidden(c *gin.Context, hidden bool) {
	messageID := c.Param("message_id")
	var err error
	if hidden {
		err = s.pipeline.Extracts().HideEvent(c.Request.Context(), messageID)
	} else {
		err = s.pipeline.Extracts().UnhideEvent(c.Request.Context(), messageID)
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": messageID, "hidden": hidden})
}

// intQuery parses an integer query parameter, returning the fallback on
// absence or garbage.
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
