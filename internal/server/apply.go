package server

import (
	"net/http"
	"strconv"

	"campusloans/internal/loan"
	"campusloans/pkg/types"
)

func (s *Service) handleGetApply(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	data := applyPageData()

	// Coming back from confirmation pre-fills the form with the draft
	if draft, ok := s.draftFromRequest(r); ok {
		data.Form = formValuesFromDraft(draft)
	}

	if err := s.renderTemplate(w, r, "page.apply", data); err != nil {
		s.logger.WithError(err).Error("failed to render application form page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostApply(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Error("failed to parse application form")
		s.internalServerError(w)
		return
	}

	var input = new(loan.DraftInput)
	if err := decoder.Decode(input, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode application form")
		s.internalServerError(w)
		return
	}

	draft, err := loan.ParseDraft(*input)
	if err != nil {
		data := applyPageData()
		data.Error = err.Error()
		data.Form = types.ApplyFormValues{
			FullName:        input.FullName,
			IDNumber:        input.IDNumber,
			PhoneNumber:     input.PhoneNumber,
			StudyType:       input.StudyType,
			CollegeName:     input.CollegeName,
			AdmissionNumber: input.AdmissionNumber,
			LoanPurpose:     input.LoanPurpose,
			LoanAmount:      input.LoanAmount,
		}

		if renderErr := s.renderTemplate(w, r, "page.apply", data); renderErr != nil {
			s.logger.WithError(renderErr).Error("failed to render application form with validation error")
			s.internalServerError(w)
		}
		return
	}

	if err := s.setDraftCookie(w, draft); err != nil {
		s.logger.WithError(err).Error("failed to encode draft cookie")
		s.internalServerError(w)
		return
	}

	s.redirectToStep(w, r, loan.StepConfirm, true)
}

func applyPageData() *types.ApplyPageData {
	return &types.ApplyPageData{
		BasePageData: types.BasePageData{Title: "Loan Application"},
		StudyTypes:   loan.StudyTypes,
		LoanPurposes: loan.LoanPurposes,
	}
}

func formValuesFromDraft(draft *loan.Draft) types.ApplyFormValues {
	return types.ApplyFormValues{
		FullName:        draft.FullName,
		IDNumber:        draft.IDNumber,
		PhoneNumber:     draft.PhoneNumber,
		StudyType:       draft.StudyType,
		CollegeName:     draft.CollegeName,
		AdmissionNumber: draft.AdmissionNumber,
		LoanPurpose:     draft.LoanPurpose,
		LoanAmount:      strconv.FormatFloat(draft.LoanAmount, 'f', -1, 64),
	}
}
