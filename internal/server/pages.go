package server

import (
	"errors"
	"net/http"
	"strings"

	"campusloans/internal/utils"
	"campusloans/pkg/types"
)

// Fixed support channels; staff-owned, not runtime configuration.
const (
	supportWhatsAppURL = "https://wa.me/254700000000?text=" +
		"Hello%2C%20I%20need%20help%20with%20my%20loan%20application"
	supportEmail = "hayeslavusa1@gmail.com"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "Campus Microfinance"},
		Notice:       r.URL.Query().Get("notice"),
		Error:        r.URL.Query().Get("error"),
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	userEmail, _ := ctx.Value(contextKeyEmail).(string)

	welcomeName := displayNameFromEmail(userEmail)
	user, err := s.userRepo.User(ctx, userID)
	if err != nil {
		if !errors.Is(err, types.ErrUserNotFound) {
			s.logger.WithError(err).WithField("user_id", userID).Error("failed to fetch user for dashboard")
			s.internalServerError(w)
			return
		}
	} else if name := strings.TrimSpace(utils.PtrString(user.GivenName)); name != "" {
		welcomeName = name
	}

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{Title: "Dashboard"},
		WelcomeName:  welcomeName,
		Notice:       strings.TrimSpace(r.URL.Query().Get("notice")),
		WhatsAppURL:  supportWhatsAppURL,
		SupportEmail: supportEmail,
	}

	if err := s.renderTemplate(w, r, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
