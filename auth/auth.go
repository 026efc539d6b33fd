// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownAccount     = errors.New("no account with that email")
	ErrInvalidToken       = errors.New("invalid session token")
)

// sessionTTL bounds how long a sign-in stays valid.
const sessionTTL = 24 * time.Hour

// Account is a registered user.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SignUp registers a new account with a bcrypt-hashed password.
func SignUp(db *sql.DB, email, password string) (Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return Account{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := Account{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	_, err = db.Exec(`
		INSERT INTO account (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, acct.ID, acct.Email, string(hash), acct.CreatedAt)
	if err != nil {
		// The unique email index is the only constraint on this insert.
		return Account{}, ErrEmailTaken
	}

	return acct, nil
}

// SignIn checks the password against the stored hash.
func SignIn(db *sql.DB, email, password string) (Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var acct Account
	var hash string
	err := db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM account
		WHERE email = $1
	`, email).Scan(&acct.ID, &acct.Email, &hash, &acct.CreatedAt)
	if err == sql.ErrNoRows {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

// RequestReset accepts an email for password reset. The mail sender is
// an external collaborator; here we only confirm the account exists.
func RequestReset(db *sql.DB, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ErrUnknownAccount
	}

	var id string
	err := db.QueryRow("SELECT id FROM account WHERE email = $1", email).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrUnknownAccount
	}
	if err != nil {
		return fmt.Errorf("failed to query account: %w", err)
	}
	return nil
}

// IsAdmin reports whether the email is the reserved admin address.
// Exact match only.
func IsAdmin(email, adminEmail string) bool {
	return adminEmail != "" && strings.EqualFold(strings.TrimSpace(email), adminEmail)
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueSessionToken mints a signed session token for the account.
func IssueSessionToken(acct Account, secret string) (string, error) {
	claims := sessionClaims{
		Email: acct.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.ID,
			ID:        uuid.NewString(), // distinct token per sign-in
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken parses and verifies a session token, returning
// the account ID and email it was issued for.
func ValidateSessionToken(tokenString, secret string) (accountID, email string, err error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}
