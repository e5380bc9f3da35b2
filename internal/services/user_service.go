package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/waibhq/waib/internal/auth"
	"github.com/waibhq/waib/internal/mailer"
	"github.com/waibhq/waib/internal/metrics"
	"github.com/waibhq/waib/internal/models"
	repo "github.com/waibhq/waib/internal/repository"
	"github.com/waibhq/waib/internal/worker"
)

// ErrInvalidCredentials is the single login failure. It never reveals
// whether the username or the password was wrong.
var ErrInvalidCredentials = invalid("Invalid username or password.")

var allowedEmailDomains = map[string]bool{
	"gmail.com":   true,
	"hotmail.com": true,
	"yahoo.com":   true,
	"outlook.com": true,
}

const passwordSpecials = "!@#$%^&*()-+"

type UserService struct {
	users  repo.Users
	mailer mailer.Sender
	pool   *worker.Pool
	log    *slog.Logger
}

func NewUserService(users repo.Users, m mailer.Sender, pool *worker.Pool, log *slog.Logger) *UserService {
	return &UserService{users: users, mailer: m, pool: pool, log: log}
}

// Register runs the registration validation chain in order, first failure
// wins. On success the user is persisted and a welcome mail is queued;
// delivery failures are logged and swallowed.
func (s *UserService) Register(ctx context.Context, username, email, password, confirm string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if username == "" || email == "" || password == "" {
		return models.User{}, invalid("Please complete all fields.")
	}
	if password != confirm {
		return models.User{}, invalid("Passwords do not match.")
	}
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, warn("Username or email already exists.")
	}
	if domain := email[strings.LastIndex(email, "@")+1:]; !allowedEmailDomains[domain] {
		return models.User{}, invalid("Please use a valid email address.")
	}
	if len(password) < 6 {
		return models.User{}, invalid("Password must be at least 6 characters long.")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return models.User{}, invalid("Password must contain at least one number.")
	}
	if !strings.ContainsFunc(password, unicode.IsLetter) {
		return models.User{}, invalid("Password must contain at least one letter.")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return models.User{}, invalid("Password must contain at least one special character.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return models.User{}, err
	}
	metrics.RegistrationsTotal.Inc()

	s.pool.Submit(func() { s.sendWelcome(u.Username, u.Email) })
	return u, nil
}

func (s *UserService) sendWelcome(username, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.mailer.Send(ctx, email, welcomeSubject, welcomeBody(username)); err != nil {
		metrics.MailFailuresTotal.WithLabelValues("welcome").Inc()
		s.log.Warn("welcome mail failed", "err", err)
	}
}

// Login resolves the user by exact username and checks the password.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !u.CheckPassword(password) {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return u, nil
}

const welcomeSubject = "Welcome to WAIB -- Let's Build Something Amazing!"

func welcomeBody(username string) string {
	return fmt.Sprintf(`Hi %s,

Welcome to WAIB!
We're excited to have you on board. At WAIB, we specialize in building modern,
responsive, and customer-winning websites tailored to your needs.

Here's what you can do next:

- Log in to your account and explore our dashboard
- Browse our ready-to-use website templates
- Reach out to us anytime for support or customization

We can't wait to help you bring your ideas online.

Cheers,
The WAIB Team
waib.com`, username)
}
