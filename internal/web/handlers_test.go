package web_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waibhq/waib/internal/config"
	"github.com/waibhq/waib/internal/repository/memory"
	"github.com/waibhq/waib/internal/services"
	"github.com/waibhq/waib/internal/session"
	"github.com/waibhq/waib/internal/web"
	"github.com/waibhq/waib/internal/worker"
)

var errRelay = errors.New("smtp unreachable")

type stubSender struct{ err error }

func (s *stubSender) Send(context.Context, string, string, string) error { return s.err }

type testApp struct {
	ts       *httptest.Server
	client   *http.Client
	users    *memory.Users
	messages *memory.ContactMessages
}

func newTestApp(t *testing.T, sender *stubSender) *testApp {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	usersRepo := memory.NewUsers()
	templatesRepo := memory.NewTemplates()
	messagesRepo := memory.NewContactMessages()
	sessions := session.NewMemoryStore()
	mgr := session.NewManager("test-secret", false)
	pool := worker.NewPool(1)

	catalogSvc := services.NewCatalogService(templatesRepo)
	userSvc := services.NewUserService(usersRepo, sender, pool, log)
	contactSvc := services.NewContactService(messagesRepo, sender, "ops@waib.com", log)
	require.NoError(t, catalogSvc.Seed(context.Background()))

	rn, err := web.NewRenderer(sessions, log)
	require.NoError(t, err)
	h := web.NewHandlers(catalogSvc, userSvc, contactSvc, sessions, rn, log)

	router := web.NewRouter(config.Config{Env: "test"}, log, h, mgr, sessions, usersRepo)
	ts := httptest.NewServer(router)
	t.Cleanup(func() {
		ts.Close()
		pool.Stop()
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := ts.Client()
	client.Jar = jar

	return &testApp{ts: ts, client: client, users: usersRepo, messages: messagesRepo}
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := a.client.Get(a.ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := a.client.PostForm(a.ts.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func (a *testApp) register(t *testing.T, username, email, password string) {
	t.Helper()
	resp, body := a.postForm(t, "/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
		"confirm":  {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/login", resp.Request.URL.Path)
	require.Contains(t, body, "Registration successful. You can now log in.")
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, body := a.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return body
}

func TestHomeShowcase(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	resp, body := app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Contains(t, body, "SaaS Spark")
	require.Contains(t, body, "Cafe Cozy")
	require.Contains(t, body, "Portfolio Pro")
	// only the first three seeded templates are showcased
	require.NotContains(t, body, "Edu Learn")
}

func TestTemplatesPriceFilter(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	resp, body := app.get(t, "/templates?price=0-60")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Contains(t, body, "Cafe Cozy")  // $49
	require.Contains(t, body, "Event Vibe") // $59
	require.NotContains(t, body, "SaaS Spark")
	require.NotContains(t, body, "Edu Learn")
	require.Less(t, strings.Index(body, "Cafe Cozy"), strings.Index(body, "Event Vibe"))
}

func TestTemplatesUnknownFilterShowsAll(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	_, body := app.get(t, "/templates?price=bogus")
	for _, title := range []string{"Cafe Cozy", "Event Vibe", "Portfolio Pro", "SaaS Spark", "Startup Hub", "Edu Learn"} {
		require.Contains(t, body, title)
	}
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	resp, body := app.get(t, "/no-such-page")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body, "404")
}

func TestRegisterWeakPasswordFlash(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	resp, body := app.postForm(t, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@gmail.com"},
		"password": {"abc123"},
		"confirm":  {"abc123"},
	})
	require.Equal(t, "/register", resp.Request.URL.Path)
	require.Contains(t, body, "Password must contain at least one special character.")
}

func TestRegisterBadDomainFlash(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	_, body := app.postForm(t, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.org"},
		"password": {"abc123!"},
		"confirm":  {"abc123!"},
	})
	require.Contains(t, body, "Please use a valid email address.")
}

func TestLoginFailureIsGeneric(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	app.register(t, "alice", "alice@gmail.com", "abc123!")

	body := app.login(t, "alice", "wrong-password")
	require.Contains(t, body, "Invalid username or password.")

	body = app.login(t, "nobody", "abc123!")
	require.Contains(t, body, "Invalid username or password.")
}

func TestLoginLogoutFlow(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	app.register(t, "alice", "alice@gmail.com", "abc123!")

	body := app.login(t, "alice", "abc123!")
	require.Contains(t, body, "Welcome back!")
	require.Contains(t, body, "Hi, alice")

	resp, body := app.get(t, "/logout")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/", resp.Request.URL.Path)
	require.Contains(t, body, "Logged out.")
	require.NotContains(t, body, "Hi, alice")
}

func TestContactAuthenticatedUsesSessionIdentity(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	app.register(t, "alice", "alice@gmail.com", "abc123!")
	app.login(t, "alice", "abc123!")

	_, body := app.get(t, "/contact")
	require.Contains(t, body, "Sending as alice")

	resp, body := app.postForm(t, "/contact", url.Values{
		"name":    {"Mallory"},
		"email":   {"mallory@evil.example"},
		"message": {"please call me"},
	})
	require.Equal(t, "/contact", resp.Request.URL.Path)
	require.Contains(t, body, "Thanks! Your message has been received.")

	require.Len(t, app.messages.Messages, 1)
	require.Equal(t, "alice", app.messages.Messages[0].Name)
	require.Equal(t, "alice@gmail.com", app.messages.Messages[0].Email)
}

func TestContactRelayFailureFlashedButPersisted(t *testing.T) {
	app := newTestApp(t, &stubSender{err: errRelay})
	resp, body := app.postForm(t, "/contact", url.Values{
		"name":    {"Bob"},
		"email":   {"bob@gmail.com"},
		"message": {"hello"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Failed to send info email:")
	require.Contains(t, body, "Thanks! Your message has been received.")
	require.Len(t, app.messages.Messages, 1)
}

func TestContactEmptyMessageFlash(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	_, body := app.postForm(t, "/contact", url.Values{
		"name":  {"Bob"},
		"email": {"bob@gmail.com"},
	})
	require.Contains(t, body, "Please write something to send a message.")
	require.Empty(t, app.messages.Messages)
}

func TestStaleSessionResolvesAnonymous(t *testing.T) {
	app := newTestApp(t, &stubSender{})
	app.register(t, "alice", "alice@gmail.com", "abc123!")
	app.login(t, "alice", "abc123!")

	app.users.Delete("alice")

	resp, body := app.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotContains(t, body, "Hi, alice")
	require.Contains(t, body, "Log in")
}
