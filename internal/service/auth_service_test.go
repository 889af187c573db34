package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portfolio-site-api/internal/mocks"
	"github.com/portfolio-site-api/internal/models"
	"github.com/portfolio-site-api/internal/ratelimit"
	"github.com/portfolio-site-api/internal/sheets"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(t *testing.T) (*authService, *mocks.MockCredentialStore, *mocks.MockUserRepository, *ratelimit.MemoryStore) {
	t.Helper()
	credStore := mocks.NewMockCredentialStore()
	userRepo := mocks.NewMockUserRepository()
	attempts := ratelimit.NewMemoryStore(5, 15*time.Minute)
	svc := newAuthService(userRepo, credStore, attempts, zerolog.Nop())
	return svc, credStore, userRepo, attempts
}

func TestLogin_Success(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Travis", Email: "test@example.com", PasswordHash: hashPassword(t, "pass1234")},
	}

	account, err := svc.Login(context.Background(), "1.2.3.4", "test@example.com", "pass1234")
	require.NoError(t, err)

	assert.Equal(t, "Travis", account.Name)
	assert.Equal(t, "test@example.com", account.Email)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Travis", Email: "Test@Example.com", PasswordHash: hashPassword(t, "pass1234")},
	}

	_, err := svc.Login(context.Background(), "1.2.3.4", "  TEST@example.COM ", "pass1234")
	assert.NoError(t, err)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "1.2.3.4", "", "")
	assert.ErrorIs(t, err, ErrEmailPasswordRequired)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Travis", Email: "test@example.com", PasswordHash: hashPassword(t, "pass1234")},
	}

	_, err := svc.Login(context.Background(), "1.2.3.4", "test@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyStoredHashNeverMatches(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Legacy", Email: "legacy@example.com", PasswordHash: "  "},
	}

	_, err := svc.Login(context.Background(), "1.2.3.4", "legacy@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SheetFailureIsServiceUnavailable(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.ListErr = errors.New("boom")

	_, err := svc.Login(context.Background(), "1.2.3.4", "test@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrSheetUnavailable,
		"a store failure must never read as invalid credentials")
}

func TestLogin_RateLimited(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Travis", Email: "test@example.com", PasswordHash: hashPassword(t, "pass1234")},
	}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// 6th attempt is rejected before credentials are even checked
	credStore.ListErr = errors.New("should not be called")
	_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// A different client key is unaffected
	credStore.ListErr = nil
	_, err = svc.Login(ctx, "5.6.7.8", "test@example.com", "pass1234")
	assert.NoError(t, err)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	svc, credStore, _, attempts := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Travis", Email: "test@example.com", PasswordHash: hashPassword(t, "pass1234")},
	}
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "pass1234")
	require.NoError(t, err)

	allowed, err := attempts.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)

	// The slate is clean: five fresh failures are needed to lock again
	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
	_, err = svc.Login(ctx, "1.2.3.4", "test@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestLogin_BlankSheetNameFallsBackToGuest(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "  ", Email: "test@example.com", PasswordHash: hashPassword(t, "pass1234")},
	}

	account, err := svc.Login(context.Background(), "1.2.3.4", "test@example.com", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "Guest", account.Name)
}

func TestRegister_Success(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)

	account, err := svc.Register(context.Background(), "Test@Example.com", "pass1234", "Travis")
	require.NoError(t, err)

	assert.Equal(t, "Travis", account.Name)
	assert.Equal(t, "test@example.com", account.Email)
	require.Equal(t, 1, credStore.AppendCalls)

	row := credStore.Rows[0]
	assert.NotEqual(t, "pass1234", row.PasswordHash, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("pass1234")))
}

func TestRegister_UsernameDefaultsToEmailLocalPart(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	account, err := svc.Register(context.Background(), "visitor@example.com", "pass1234", "")
	require.NoError(t, err)
	assert.Equal(t, "visitor", account.Name)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "", "Travis")
	assert.ErrorIs(t, err, ErrEmailPasswordRequired)

	_, err = svc.Register(ctx, "not-an-email", "pass1234", "Travis")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{
		{Name: "Old", Email: "test@example.com", PasswordHash: "x"},
	}

	_, err := svc.Register(context.Background(), "TEST@example.com", "pass1234", "New")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 0, credStore.AppendCalls)
}

func TestRegister_SheetFailures(t *testing.T) {
	svc, credStore, _, _ := newTestAuthService(t)
	ctx := context.Background()

	credStore.ListErr = errors.New("read boom")
	_, err := svc.Register(ctx, "test@example.com", "pass1234", "Travis")
	assert.ErrorIs(t, err, ErrSheetUnavailable)

	credStore.ListErr = nil
	credStore.AppendErr = errors.New("write boom")
	_, err = svc.Register(ctx, "test@example.com", "pass1234", "Travis")
	assert.ErrorIs(t, err, ErrSheetUnavailable)
}

func TestNativeLogin_Success(t *testing.T) {
	svc, _, userRepo, _ := newTestAuthService(t)
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hashPassword(t, "pass1234"),
	}))

	user, err := svc.NativeLogin(context.Background(), "1.2.3.4", "alice@example.com", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestNativeLogin_UnknownOrWrongPassword(t *testing.T) {
	svc, _, userRepo, _ := newTestAuthService(t)
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hashPassword(t, "pass1234"),
	}))
	ctx := context.Background()

	_, err := svc.NativeLogin(ctx, "1.2.3.4", "nobody@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.NativeLogin(ctx, "1.2.3.4", "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNativeLogin_SharesRateLimiter(t *testing.T) {
	svc, credStore, userRepo, _ := newTestAuthService(t)
	credStore.Rows = []sheets.SheetUser{}
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hashPassword(t, "pass1234"),
	}))
	ctx := context.Background()

	// Failures against sheet login count toward the same client key
	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, "1.2.3.4", "test@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := svc.NativeLogin(ctx, "1.2.3.4", "alice@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}
