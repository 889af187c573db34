// Package sheets implements the spreadsheet-backed credential store.
// Registered visitors live as rows of a Google Sheet worksheet rather
// than in the application's own user table.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Worksheet column order, matching the sheet headers
// "User Name", "Email", "Date Joined", "Password (Now Hashed)".
const (
	colName = iota
	colEmail
	colJoined
	colPasswordHash
	columnCount
)

// joinedAtFormat is the timestamp format written to the Date Joined column.
const joinedAtFormat = "2006-01-02 15:04:05"

// SheetUser is one row of the user worksheet.
type SheetUser struct {
	Name         string
	Email        string
	JoinedAt     string
	PasswordHash string
}

// CredentialStore reads and appends sheet-backed user rows. The auth
// service treats any error from it as a service-unavailable condition,
// never as invalid credentials.
type CredentialStore interface {
	ListUsers(ctx context.Context) ([]SheetUser, error)
	AppendUser(ctx context.Context, user SheetUser) error
}

// Client is the Google Sheets implementation of CredentialStore.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	worksheet     string
	log           zerolog.Logger
}

// Config holds the settings needed to reach the user worksheet.
type Config struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
}

// NewClient creates a Sheets API client for the configured worksheet.
func NewClient(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		log:           log.With().Str("component", "sheets").Logger(),
	}, nil
}

// ListUsers reads every user row below the header.
func (c *Client) ListUsers(ctx context.Context) ([]SheetUser, error) {
	readRange := fmt.Sprintf("%s!A2:D", c.worksheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read user worksheet: %w", err)
	}

	users := make([]SheetUser, 0, len(resp.Values))
	for _, row := range resp.Values {
		users = append(users, SheetUser{
			Name:         cell(row, colName),
			Email:        cell(row, colEmail),
			JoinedAt:     cell(row, colJoined),
			PasswordHash: cell(row, colPasswordHash),
		})
	}
	return users, nil
}

// AppendUser appends one user row to the worksheet.
func (c *Client) AppendUser(ctx context.Context, user SheetUser) error {
	if user.JoinedAt == "" {
		user.JoinedAt = time.Now().Format(joinedAtFormat)
	}

	vr := &sheetsapi.ValueRange{
		Values: [][]interface{}{{user.Name, user.Email, user.JoinedAt, user.PasswordHash}},
	}
	writeRange := fmt.Sprintf("%s!A:D", c.worksheet)

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append user row: %w", err)
	}

	c.log.Info().Str("email", user.Email).Msg("User row appended to sheet")
	return nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}

// ErrNotConfigured is returned by Unconfigured for every operation.
var ErrNotConfigured = errors.New("sheets credential store is not configured")

// Unconfigured is a CredentialStore that always fails. It stands in when
// no spreadsheet ID is configured so the auth endpoints degrade to a
// service-unavailable response instead of the server refusing to start.
type Unconfigured struct{}

func (Unconfigured) ListUsers(ctx context.Context) ([]SheetUser, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) AppendUser(ctx context.Context, user SheetUser) error {
	return ErrNotConfigured
}
