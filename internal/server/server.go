package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"campusloans/internal/store"
	"campusloans/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger           *logrus.Logger
	config           *types.Config
	applicationsRepo *store.ApplicationRepository
	userRepo         *store.UserRepository
	templates        *template.Template

	cognitoClient *cognitoidentityprovider.Client
	cookie        *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	applicationsRepo *store.ApplicationRepository,
	userRepo *store.UserRepository,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:        logger,
		config:        config,
		cognitoClient: cognitoClient,
		cookie:        securecookie.New(hashKey, blockKey),

		applicationsRepo: applicationsRepo,
		userRepo:         userRepo,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)

	r.HandleFunc("/register", s.handleGetRegister, http.MethodGet)
	r.HandleFunc("/register", s.handlePostRegister, http.MethodPost)
	r.HandleFunc("/register/confirm", s.handleGetRegisterConfirm, http.MethodGet)
	r.HandleFunc("/register/confirm", s.handlePostRegisterConfirm, http.MethodPost)
	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handlePostLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/dashboard", s.handleGetDashboard, http.MethodGet)

		// Application workflow: form -> confirm -> payment -> success
		r.HandleFunc("/apply", s.handleGetApply, http.MethodGet)
		r.HandleFunc("/apply", s.handlePostApply, http.MethodPost)
		r.HandleFunc("/confirm", s.handleGetConfirm, http.MethodGet)
		r.HandleFunc("/confirm", s.handlePostConfirm, http.MethodPost)
		r.HandleFunc("/payment", s.handleGetPayment, http.MethodGet)
		r.HandleFunc("/payment", s.handlePostPayment, http.MethodPost)
		r.HandleFunc("/success", s.handleGetSuccess, http.MethodGet)

		r.HandleFunc("/status", s.handleGetStatus, http.MethodGet)
	})

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil {
				return defaultVal
			}
			return *s
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	if !ok {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}
