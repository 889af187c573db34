package service

import (
	"context"
	"strings"

	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/ratelimit"
	"github.com/portfolio-site-api/internal/repository"
	"github.com/portfolio-site-api/internal/sheets"
	"github.com/portfolio-site-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users     repository.UserRepository
	credStore sheets.CredentialStore
	attempts  ratelimit.AttemptStore
	log       zerolog.Logger
}

func newAuthService(users repository.UserRepository, credStore sheets.CredentialStore, attempts ratelimit.AttemptStore, log zerolog.Logger) *authService {
	return &authService{
		users:     users,
		credStore: credStore,
		attempts:  attempts,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies email+password against the sheet-backed user rows.
// Rate-limited clients are rejected before any credential work happens.
func (s *authService) Login(ctx context.Context, clientKey, email, password string) (*SheetAccount, error) {
	if err := s.checkAttempts(ctx, clientKey); err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}

	rows, err := s.credStore.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Credential store read failed")
		return nil, ErrSheetUnavailable
	}

	var matched *sheets.SheetUser
	for i := range rows {
		row := &rows[i]
		if normalizeEmail(row.Email) != email {
			continue
		}
		hash := strings.TrimSpace(row.PasswordHash)
		if hash != "" && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			matched = row
			break
		}
	}

	if matched == nil {
		s.recordFailure(ctx, clientKey)
		return nil, ErrInvalidCredentials
	}

	s.recordSuccess(ctx, clientKey)

	name := strings.TrimSpace(matched.Name)
	if name == "" {
		name = "Guest"
	}
	s.log.Info().Str("email", matched.Email).Msg("Sheet user signed in")
	return &SheetAccount{Name: name, Email: matched.Email}, nil
}

// Register appends a new user row to the sheet. Username defaults to the
// email's local part when omitted.
func (s *authService) Register(ctx context.Context, email, password, username string) (*SheetAccount, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	username = strings.TrimSpace(username)

	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}

	rows, err := s.credStore.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Credential store read failed")
		return nil, ErrSheetUnavailable
	}
	for i := range rows {
		if normalizeEmail(rows[i].Email) == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	row := sheets.SheetUser{Name: username, Email: email, PasswordHash: string(hash)}
	if err := s.credStore.AppendUser(ctx, row); err != nil {
		s.log.Error().Err(err).Msg("Credential store write failed")
		return nil, ErrSheetUnavailable
	}

	s.log.Info().Str("email", email).Msg("Sheet user registered")
	return &SheetAccount{Name: username, Email: email}, nil
}

// NativeLogin verifies email+password against the application's own user
// table. It shares the login rate limiter with sheet login.
func (s *authService) NativeLogin(ctx context.Context, clientKey, email, password string) (*models.User, error) {
	if err := s.checkAttempts(ctx, clientKey); err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.log.Error().Err(err).Msg("Native user lookup failed")
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, clientKey)
		return nil, ErrInvalidCredentials
	}

	s.recordSuccess(ctx, clientKey)
	s.log.Info().Int64("user_id", user.ID).Msg("Native user signed in")
	return user, nil
}

// checkAttempts consults the rate limiter. A limiter backend failure is
// logged and treated as allowed: for a portfolio site, availability of
// login wins over strictness of the brake.
func (s *authService) checkAttempts(ctx context.Context, clientKey string) error {
	allowed, err := s.attempts.Check(ctx, clientKey)
	if err != nil {
		s.log.Error().Err(err).Str("client", clientKey).Msg("Attempt store check failed")
		return nil
	}
	if !allowed {
		return ErrTooManyAttempts
	}
	return nil
}

func (s *authService) recordFailure(ctx context.Context, clientKey string) {
	if err := s.attempts.RecordFailure(ctx, clientKey); err != nil {
		s.log.Error().Err(err).Str("client", clientKey).Msg("Failed to record login failure")
	}
}

func (s *authService) recordSuccess(ctx context.Context, clientKey string) {
	if err := s.attempts.RecordSuccess(ctx, clientKey); err != nil {
		s.log.Error().Err(err).Str("client", clientKey).Msg("Failed to clear attempt counter")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
