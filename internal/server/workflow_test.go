package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusloans/internal/loan"
	"campusloans/pkg/types"

	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	config := &types.Config{
		ServerPort:      8080,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 15,
		CookieHashKey:   base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
		CookieBlockKey:  base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := New(config, logger, nil, nil, nil, nil, "")
	require.NoError(t, err)

	return s
}

func testDraft() *loan.Draft {
	return &loan.Draft{
		FullName:        "Jane Doe",
		IDNumber:        "12345678",
		PhoneNumber:     "0712345678",
		StudyType:       "Degree",
		CollegeName:     "UoN",
		AdmissionNumber: "A123",
		LoanPurpose:     "Fee Payment",
		LoanAmount:      5000,
	}
}

// attachDraft round-trips a draft through the encrypted cookie the way a
// browser would between steps.
func attachDraft(t *testing.T, s *Service, r *http.Request, draft *loan.Draft) {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, s.setDraftCookie(rec, draft))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	r.AddCookie(cookies[0])
}

func TestConfirmWithoutDraftRedirectsToForm(t *testing.T) {
	s := newTestService(t)

	r := httptest.NewRequest(http.MethodGet, "/confirm", nil)
	w := httptest.NewRecorder()

	s.handleGetConfirm(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply", w.Header().Get("Location"))
}

func TestPaymentWithoutDraftRedirectsToForm(t *testing.T) {
	s := newTestService(t)

	r := httptest.NewRequest(http.MethodGet, "/payment", nil)
	w := httptest.NewRecorder()

	s.handleGetPayment(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply", w.Header().Get("Location"))
}

func TestConfirmRendersDraftUnchanged(t *testing.T) {
	s := newTestService(t)

	r := httptest.NewRequest(http.MethodGet, "/confirm", nil)
	attachDraft(t, s, r, testDraft())
	w := httptest.NewRecorder()

	s.handleGetConfirm(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "0712345678")
	assert.Contains(t, body, "UoN")
	assert.Contains(t, body, "KSh 5,000")
}

func TestDraftCookieRoundTrip(t *testing.T) {
	s := newTestService(t)
	draft := testDraft()

	r := httptest.NewRequest(http.MethodGet, "/payment", nil)
	attachDraft(t, s, r, draft)

	got, ok := s.draftFromRequest(r)
	require.True(t, ok)
	assert.Equal(t, draft, got)
}

func TestDraftCookieRejectsTampering(t *testing.T) {
	s := newTestService(t)

	r := httptest.NewRequest(http.MethodGet, "/confirm", nil)
	r.AddCookie(&http.Cookie{Name: "campusloans_loan_draft", Value: "garbage"})

	_, ok := s.draftFromRequest(r)
	assert.False(t, ok)
}

func TestPostApplyValidDraftAdvancesToConfirm(t *testing.T) {
	s := newTestService(t)

	form := "full_name=Jane+Doe&id_number=12345678&phone_number=0712345678" +
		"&study_type=Degree&college_name=UoN&admission_number=A123" +
		"&loan_purpose=Fee+Payment&loan_amount=5000"

	r := httptest.NewRequest(http.MethodPost, "/apply", strings.NewReader(form))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.handlePostApply(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/confirm", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "campusloans_loan_draft", cookies[0].Name)
}

func TestPostApplyInvalidDraftStaysOnForm(t *testing.T) {
	s := newTestService(t)

	form := "full_name=J&id_number=12345678&phone_number=0712345678" +
		"&study_type=Degree&college_name=UoN&admission_number=A123" +
		"&loan_purpose=Fee+Payment&loan_amount=5000"

	r := httptest.NewRequest(http.MethodPost, "/apply", strings.NewReader(form))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.handlePostApply(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), loan.ErrFullName.Error())
	assert.Empty(t, w.Result().Cookies(), "invalid draft must not be handed to the next step")
}

func TestStatusCards(t *testing.T) {
	apps := []*types.LoanApplication{
		{
			FullName:    "Jane Doe",
			LoanAmount:  5000,
			LoanPurpose: "Fee Payment",
			Status:      types.ApplicationStatusPending,
		},
		{
			FullName:    "Jane Doe",
			LoanAmount:  12000,
			LoanPurpose: "Accommodation",
			Status:      types.ApplicationStatusApproved,
		},
	}

	cards := statusCards(apps)
	require.Len(t, cards, 2)

	assert.Equal(t, "KSh 5,000", cards[0].LoanAmount)
	assert.Equal(t, "neutral", cards[0].BadgeTone)
	assert.Equal(t, "clock", cards[0].BadgeIcon)

	assert.Equal(t, "KSh 12,000", cards[1].LoanAmount)
	assert.Equal(t, "positive", cards[1].BadgeTone)
	assert.Equal(t, "check", cards[1].BadgeIcon)
}

func TestFormatKSh(t *testing.T) {
	assert.Equal(t, "KSh 150", formatKSh(150))
	assert.Equal(t, "KSh 5,000", formatKSh(5000))
	assert.Equal(t, "KSh 1,000,000", formatKSh(1_000_000))
	assert.Equal(t, "KSh 999,999.99", formatKSh(999999.99))
}
