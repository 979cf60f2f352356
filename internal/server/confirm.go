package server

import (
	"net/http"

	"campusloans/internal/loan"
	"campusloans/pkg/types"
)

func (s *Service) handleGetConfirm(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	draft, ok := s.draftFromRequest(r)
	if !ok {
		// Direct navigation without a draft lands back on the form
		s.redirectToStep(w, r, loan.StepConfirm, false)
		return
	}

	data := &types.ConfirmPageData{
		BasePageData:    types.BasePageData{Title: "Review Your Application"},
		FullName:        draft.FullName,
		IDNumber:        draft.IDNumber,
		PhoneNumber:     draft.PhoneNumber,
		StudyType:       draft.StudyType,
		CollegeName:     draft.CollegeName,
		AdmissionNumber: draft.AdmissionNumber,
		LoanPurpose:     draft.LoanPurpose,
		LoanAmount:      formatKSh(draft.LoanAmount),
	}

	if err := s.renderTemplate(w, r, "page.confirm", data); err != nil {
		s.logger.WithError(err).Error("failed to render confirmation page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostConfirm(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	_, ok := s.draftFromRequest(r)
	s.redirectToStep(w, r, loan.StepPayment, ok)
}
