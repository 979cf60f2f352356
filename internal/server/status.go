package server

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"campusloans/internal/loan"
	"campusloans/pkg/types"
)

func (s *Service) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	apps, err := s.applicationsRepo.ApplicationsByUser(fetchCtx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to fetch loan applications")
		s.internalServerError(w)
		return
	}

	data := &types.StatusPageData{
		BasePageData:    types.BasePageData{Title: "My Loan Applications"},
		Applications:    statusCards(apps),
		HasApplications: len(apps) > 0,
	}

	if err := s.renderTemplate(w, r, "page.status", data); err != nil {
		s.logger.WithError(err).Error("failed to render status page")
		s.internalServerError(w)
		return
	}
}

// statusCards maps store rows to view cards, preserving order. Badge
// display comes from the fixed status lookup.
func statusCards(apps []*types.LoanApplication) []types.StatusCard {
	cards := make([]types.StatusCard, 0, len(apps))
	for _, app := range apps {
		badge := loan.BadgeFor(app.Status)
		cards = append(cards, types.StatusCard{
			FullName:    app.FullName,
			AppliedOn:   app.CreatedAt.Format("2 Jan 2006"),
			LoanAmount:  formatKSh(app.LoanAmount),
			LoanPurpose: app.LoanPurpose,
			Status:      app.Status,
			BadgeTone:   string(badge.Tone),
			BadgeIcon:   badge.Icon,
		})
	}
	return cards
}

func formatKSh(amount float64) string {
	return fmt.Sprintf("KSh %s", groupThousands(amount))
}

func groupThousands(amount float64) string {
	out := strconv.FormatInt(int64(amount), 10)
	for i := len(out) - 3; i > 0; i -= 3 {
		out = out[:i] + "," + out[i:]
	}
	if frac := amount - math.Trunc(amount); frac > 0 {
		out += strconv.FormatFloat(frac, 'f', 2, 64)[1:]
	}
	return out
}
