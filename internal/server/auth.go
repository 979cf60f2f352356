package server

import (
	"context"
	"net/http"
	"strings"

	"campusloans/internal"
	"campusloans/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	ctypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

func (s *Service) handleGetLogin(w http.ResponseWriter, r *http.Request) {

	_, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME)
	if err == nil {
		s.logger.Info("user is already logged in, redirecting to dashboard")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := &types.LoginPageData{
		BasePageData: types.BasePageData{Title: "Login"},
	}

	if r.URL.Query().Get("confirmed") == "true" {
		data.Message = "Account confirmed. You can now log in."
	}

	err = s.renderTemplate(w, r, "page.login", data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render login page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	data := &types.LoginPageData{
		BasePageData: types.BasePageData{Title: "Login"},
		Email:        email,
	}

	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: ctypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.config.CognitoClientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	}

	resp, err := s.cognitoClient.InitiateAuth(r.Context(), input)
	if err != nil {
		// NotAuthorizedException, UserNotConfirmedException, etc.
		s.logger.WithError(err).Info("login attempt rejected")

		data.Error = "Invalid email or password."
		if renderErr := s.renderTemplate(w, r, "page.login", data); renderErr != nil {
			s.logger.WithError(renderErr).Error("failed to render login page with error")
			s.internalServerError(w)
		}
		return
	}

	if resp.AuthenticationResult == nil || resp.AuthenticationResult.AccessToken == nil {
		data.Error = "Login failed. Please try again."
		if renderErr := s.renderTemplate(w, r, "page.login", data); renderErr != nil {
			s.logger.WithError(renderErr).Error("failed to render login page with error")
			s.internalServerError(w)
		}
		return
	}

	accessToken := aws.ToString(resp.AuthenticationResult.AccessToken)
	expiresIn := int(resp.AuthenticationResult.ExpiresIn)

	s.upsertIdentityFromToken(r.Context(), accessToken, email)

	encryptedToken, err := s.cookie.Encode(internal.COOKIE_ACCESS_TOKEN_NAME, accessToken)
	if err != nil {
		s.logger.WithError(err).Error("failed to encrypt access token")
		s.internalServerError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    encryptedToken,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   expiresIn,
		Path:     "/",
	})

	// Check to see if this login attempt was the result of an unauthed redirect
	redirectCookie, err := r.Cookie(internal.COOKIE_REDIRECT_NAME)
	if err == nil {
		path := redirectCookie.Value
		s.clearRedirectCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Service) handlePostLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
	s.clearDraftCookie(w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// upsertIdentityFromToken mirrors the Cognito identity into the local users
// table so pages can greet the student by name. Best effort: a failure here
// never blocks login.
func (s *Service) upsertIdentityFromToken(ctx context.Context, accessToken, email string) {
	set, err := s.jwksCache.Lookup(ctx, s.jwksURL)
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch JWKS during identity upsert")
		return
	}

	token, err := jwt.Parse(
		[]byte(accessToken),
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
	)
	if err != nil {
		s.logger.WithError(err).Warn("failed to parse access token during identity upsert")
		return
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return
	}

	if err := s.userRepo.UpsertIdentity(ctx, userID, email, "", ""); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("failed to upsert user identity")
	}
}
