// Package mockapi is an in-memory stand-in for the cinema booking API, used
// for local demos and tests.
package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"cinema-tui/model"
	"cinema-tui/profile"
)

const (
	// TokenLifetime is the expiry, in seconds, reported on login.
	TokenLifetime = 3600

	userIDKey = "user_id"
)

type Server struct {
	mu       sync.Mutex
	fixtures Fixtures
	tokens   map[string]string
	now      func() time.Time
	logger   logrus.FieldLogger
}

type Option func(*Server)

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) { s.logger = logger }
}

func NewServer(fixtures Fixtures, opts ...Option) *Server {
	if fixtures.Tickets == nil {
		fixtures.Tickets = map[string][]model.Ticket{}
	}
	s := &Server{
		fixtures: fixtures,
		tokens:   map[string]string{},
		now:      time.Now,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken registers a token for userID without a login round trip.
func (s *Server) IssueToken(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.tokens[token] = userID
	return token
}

// Router builds the echo instance serving the /v1 API.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.logRequests)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	v1 := e.Group("/v1")
	v1.POST("/login", s.Login)
	v1.GET("/movies", s.ListMovies)
	v1.GET("/movies/:id", s.GetMovie)
	v1.GET("/shows/:id", s.GetShow)

	v1.GET("/profile", s.GetProfile, s.requireToken)
	v1.PUT("/profile", s.UpdateProfile, s.requireToken)
	v1.GET("/tickets/user", s.ListUserTickets, s.requireToken)

	return e
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		s.logger.WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"path":       c.Request().URL.Path,
			"status":     c.Response().Status,
			"request_id": c.Request().Header.Get(echo.HeaderXRequestID),
		}).Debug("mockapi request")
		return err
	}
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return failure(c, http.StatusUnauthorized, "missing bearer token")
		}
		s.mu.Lock()
		userID, known := s.tokens[strings.TrimSpace(token)]
		s.mu.Unlock()
		if !known {
			return failure(c, http.StatusUnauthorized, "invalid token")
		}
		c.Set(userIDKey, userID)
		return next(c)
	}
}

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func success(c echo.Context, status int, data any) error {
	return c.JSON(status, dataResponse{Data: data})
}

func failure(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Message: message})
}

func (s *Server) Login(c echo.Context) error {
	var cred model.Credential
	if err := c.Bind(&cred); err != nil {
		return failure(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.fixtures.Accounts {
		if strings.EqualFold(acc.User.Email, strings.TrimSpace(cred.Email)) && acc.Password == cred.Password {
			token := uuid.NewString()
			s.tokens[token] = acc.User.Id
			return success(c, http.StatusOK, model.Account{
				CreatedAt: s.now().UTC().Format(time.RFC3339),
				Expiry:    TokenLifetime,
				Token:     token,
			})
		}
	}
	return failure(c, http.StatusUnauthorized, "invalid email or password")
}

func (s *Server) GetProfile(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.account(c.Get(userIDKey).(string))
	if acc == nil {
		return failure(c, http.StatusNotFound, "user not found")
	}
	return success(c, http.StatusOK, acc.User)
}

func (s *Server) UpdateProfile(c echo.Context) error {
	var update model.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return failure(c, http.StatusBadRequest, "invalid request body")
	}
	if err := profile.ValidateDateOfBirth(update.DateOfBirth, s.now()); err != nil {
		return failure(c, http.StatusUnprocessableEntity, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.account(c.Get(userIDKey).(string))
	if acc == nil {
		return failure(c, http.StatusNotFound, "user not found")
	}
	acc.User.Name = update.Name
	acc.User.Phone = update.Phone
	acc.User.DateOfBirth = update.DateOfBirth
	acc.User.Gender = update.Gender
	acc.User.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return success(c, http.StatusOK, acc.User)
}

func (s *Server) ListUserTickets(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tickets := s.fixtures.Tickets[c.Get(userIDKey).(string)]
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return success(c, http.StatusOK, tickets)
}

func (s *Server) ListMovies(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return success(c, http.StatusOK, s.fixtures.Movies)
}

func (s *Server) GetMovie(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, movie := range s.fixtures.Movies {
		if movie.ImdbID == id {
			return success(c, http.StatusOK, movie)
		}
	}
	return failure(c, http.StatusNotFound, "movie not found")
}

func (s *Server) GetShow(c echo.Context) error {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, show := range s.fixtures.Shows {
		if show.Id.String() == id {
			return success(c, http.StatusOK, show)
		}
	}
	return failure(c, http.StatusNotFound, "show not found")
}

// account must be called with s.mu held.
func (s *Server) account(userID string) *Account {
	for i := range s.fixtures.Accounts {
		if s.fixtures.Accounts[i].User.Id == userID {
			return &s.fixtures.Accounts[i]
		}
	}
	return nil
}
