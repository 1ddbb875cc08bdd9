// Package account is the simulated sign-in for the web UI: accounts only live for as long as the process does.
package account

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountExists      = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownAccount     = errors.New("no account with that email")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
)

// MessageKey returns the translation key to show the user for err, or "" when there's none.
func MessageKey(err error) string {
	var formErr *FormError
	switch {
	case errors.As(err, &formErr):
		return formErr.Key
	case errors.Is(err, ErrAccountExists):
		return "accountExists"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalidCredentials"
	case errors.Is(err, ErrInvalidCode):
		return "invalidCode"
	default:
		return ""
	}
}

const codeTTL = 15 * time.Minute

type Account struct {
	Fullname string
	Email    string
	Phone    string
}

type account struct {
	Account
	hash []byte
}

type resetCode struct {
	code    string
	expires time.Time
}

type Service struct {
	log     *slog.Logger
	now     func() time.Time
	newCode func() (string, error)
	cost    int

	mu       sync.Mutex
	accounts map[string]account
	codes    map[string]resetCode
}

type Option func(s *Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithClock replaces time.Now, used to expire verification codes.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithCodeGenerator(fn func() (string, error)) Option {
	return func(s *Service) {
		s.newCode = fn
	}
}

// WithBcryptCost sets the hashing cost, tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		log:      slog.Default(),
		now:      time.Now,
		newCode:  randomCode,
		cost:     bcrypt.DefaultCost,
		accounts: make(map[string]account),
		codes:    make(map[string]resetCode),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Register(ctx context.Context, f RegisterForm) (Account, error) {
	if err := f.Validate(ctx); err != nil {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), s.cost)
	if err != nil {
		return Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	email := normalizeEmail(f.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; ok {
		return Account{}, ErrAccountExists
	}

	acc := account{
		Account: Account{Fullname: strings.TrimSpace(f.Fullname), Email: email, Phone: f.Phone},
		hash:    hash,
	}
	s.accounts[email] = acc
	s.log.Info("registered account", "email", email)

	return acc.Account, nil
}

func (s *Service) Login(ctx context.Context, f LoginForm) (Account, error) {
	if err := f.Validate(ctx); err != nil {
		return Account{}, err
	}

	s.mu.Lock()
	acc, ok := s.accounts[normalizeEmail(f.Email)]
	s.mu.Unlock()

	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(f.Password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return acc.Account, nil
}

// RequestReset issues a verification code for the account. There's no mail
// delivery so the code is returned, and logged, for the caller to hand on.
func (s *Service) RequestReset(ctx context.Context, f ForgotPasswordForm) (string, error) {
	if err := f.Validate(ctx); err != nil {
		return "", err
	}

	email := normalizeEmail(f.Email)
	code, err := s.newCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; !ok {
		return "", ErrUnknownAccount
	}

	s.codes[email] = resetCode{code: code, expires: s.now().Add(codeTTL)}
	s.log.Info("issued verification code", "email", email, "code", code)

	return code, nil
}

func (s *Service) VerifyCode(ctx context.Context, f VerifyCodeForm) error {
	if err := f.Validate(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.checkCode(normalizeEmail(f.Email), f.Code)
}

// ResetPassword sets a new password. The code is used up by it.
func (s *Service) ResetPassword(ctx context.Context, f ResetPasswordForm) error {
	if err := f.Validate(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.NewPassword), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	email := normalizeEmail(f.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCode(email, f.Code); err != nil {
		return err
	}

	acc := s.accounts[email]
	acc.hash = hash
	s.accounts[email] = acc
	delete(s.codes, email)
	s.log.Info("reset password", "email", email)

	return nil
}

// checkCode must be called with mu held.
func (s *Service) checkCode(email, code string) error {
	rc, ok := s.codes[email]
	if !ok || rc.code != code {
		return ErrInvalidCode
	}
	if s.now().After(rc.expires) {
		delete(s.codes, email)
		return ErrInvalidCode
	}
	if _, ok := s.accounts[email]; !ok {
		return ErrInvalidCode
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
