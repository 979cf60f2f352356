package server

import (
	"net/http"
	"time"

	"campusloans/internal"
	"campusloans/internal/loan"
)

// A validated draft travels between the form, confirmation and payment
// steps inside an encrypted short-lived cookie. Nothing is durable until
// the payment step commits; abandoning the flow just lets the cookie
// expire.
const draftCookieMaxAge = 30 * time.Minute

func (s *Service) setDraftCookie(w http.ResponseWriter, draft *loan.Draft) error {
	encoded, err := s.cookie.Encode(internal.COOKIE_DRAFT_NAME, draft)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_DRAFT_NAME,
		Value:    encoded,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(draftCookieMaxAge.Seconds()),
	})

	return nil
}

func (s *Service) draftFromRequest(r *http.Request) (*loan.Draft, bool) {
	cookie, err := r.Cookie(internal.COOKIE_DRAFT_NAME)
	if err != nil {
		return nil, false
	}

	var draft loan.Draft
	if err := s.cookie.Decode(internal.COOKIE_DRAFT_NAME, cookie.Value, &draft); err != nil {
		s.logger.WithError(err).Debug("failed to decode draft cookie")
		return nil, false
	}

	return &draft, true
}

func (s *Service) clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_DRAFT_NAME,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// redirectToStep sends the user to the page for a workflow step, guarding
// entry with the draft prerequisite.
func (s *Service) redirectToStep(w http.ResponseWriter, r *http.Request, step loan.Step, hasDraft bool) {
	http.Redirect(w, r, stepPath(loan.Enter(step, hasDraft)), http.StatusSeeOther)
}

func stepPath(step loan.Step) string {
	switch step {
	case loan.StepConfirm:
		return "/confirm"
	case loan.StepPayment:
		return "/payment"
	case loan.StepSuccess:
		return "/success"
	default:
		return "/apply"
	}
}
