package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"campusloans/internal/loan"
	"campusloans/pkg/types"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	_, ok := s.draftFromRequest(r)
	if !ok {
		s.redirectToStep(w, r, loan.StepPayment, false)
		return
	}

	if err := s.renderTemplate(w, r, "page.payment", paymentPageData()); err != nil {
		s.logger.WithError(err).Error("failed to render payment page")
		s.internalServerError(w)
		return
	}
}

// handlePostPayment is the single commit point of the workflow: the draft
// plus the M-Pesa code becomes one durable row with status Pending. On a
// backend failure the user stays here and may resubmit; there is no retry
// queue and no partial write.
func (s *Service) handlePostPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, ok := s.draftFromRequest(r)
	if !ok {
		s.redirectToStep(w, r, loan.StepPayment, false)
		return
	}

	mpesaCode, err := loan.ValidateMpesaCode(r.FormValue("mpesa_code"))
	if err != nil {
		data := paymentPageData()
		data.Error = err.Error()
		data.MpesaCode = r.FormValue("mpesa_code")

		if renderErr := s.renderTemplate(w, r, "page.payment", data); renderErr != nil {
			s.logger.WithError(renderErr).Error("failed to render payment page with validation error")
			s.internalServerError(w)
		}
		return
	}

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("no authenticated user at payment submission")
		s.redirectToLogin(w, r)
		return
	}

	app := &types.LoanApplication{
		UserID:          userID,
		FullName:        draft.FullName,
		IDNumber:        draft.IDNumber,
		PhoneNumber:     draft.PhoneNumber,
		StudyType:       draft.StudyType,
		CollegeName:     draft.CollegeName,
		AdmissionNumber: draft.AdmissionNumber,
		LoanPurpose:     draft.LoanPurpose,
		LoanAmount:      draft.LoanAmount,
		MpesaCode:       mpesaCode,
		Status:          types.ApplicationStatusPending,
	}

	insertCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.applicationsRepo.CreateApplication(insertCtx, app); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to insert loan application")

		data := paymentPageData()
		data.Error = "Failed to submit application. Please try again."
		data.MpesaCode = mpesaCode

		if renderErr := s.renderTemplate(w, r, "page.payment", data); renderErr != nil {
			s.logger.WithError(renderErr).Error("failed to render payment page with submission error")
			s.internalServerError(w)
		}
		return
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":        userID,
		"application_id": app.ID,
	}).Info("loan application submitted")

	s.clearDraftCookie(w)
	s.redirectToStep(w, r, loan.StepSuccess, true)
}

func (s *Service) handleGetSuccess(w http.ResponseWriter, r *http.Request) {
	var _ = r.Context()

	data := &types.SuccessPageData{
		BasePageData: types.BasePageData{Title: "Application Submitted"},
	}

	if err := s.renderTemplate(w, r, "page.success", data); err != nil {
		s.logger.WithError(err).Error("failed to render success page")
		s.internalServerError(w)
		return
	}
}

func paymentPageData() *types.PaymentPageData {
	return &types.PaymentPageData{
		BasePageData: types.BasePageData{Title: "Service Fee Payment"},
		TillNumber:   loan.TillNumber,
		ServiceFee:   "KSh " + strconv.Itoa(loan.ServiceFeeKSh),
	}
}
