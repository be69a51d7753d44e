package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/pkg/models"
)

const (
	defaultSummaryMonths = 3
	maxSummaryMonths     = 24
	defaultPaymentLimit  = 100
)

// PaymentSummary handles GET /api/payments/summary. The breakdown is
// computed in one currency: the explicit ?currency= if given, else the
// most common currency in the window. Other currencies present are named
// so the client can offer a switch.
func (s *Server) PaymentSummary(c *gin.Context) {
	ctx := c.Request.Context()
	store := s.pipeline.Extracts()

	months := intQuery(c, "months", defaultSummaryMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSummaryMonths {
		months = maxSummaryMonths
	}
	limit := intQuery(c, "limit", defaultPaymentLimit)

	currency := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	primary, others, err := store.PrimaryCurrency(ctx, months)
	if err != nil {
		serverError(c, err)
		return
	}
	if currency == "" {
		currency = primary
	}

	analytics, err := store.Analytics(ctx, months, currency)
	if err != nil {
		serverError(c, err)
		return
	}
	rows, err := store.ListRecentPayments(ctx, months, limit, currency)
	if err != nil {
		serverError(c, err)
		return
	}

	payments := make([]models.PaymentResponse, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, models.PaymentFrom(r))
	}
	c.JSON(http.StatusOK, models.PaymentSummaryResponse{
		Months:          months,
		Currency:        currency,
		OtherCurrencies: others,
		Analytics:       analytics,
		Payments:        payments,
	})
}
