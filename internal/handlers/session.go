package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kidandcat/geolog/internal/nav"
)

const (
	// SessionCookie is the backend's login session.
	SessionCookie = "sessionid"
	// UserIDHeader, when the backend sends it, names the signed-in user directly.
	UserIDHeader = "X-User-ID"

	resolveTimeout = 5 * time.Second
)

var (
	errSignedOut = errors.New("backend session is not signed in")

	// The backend index page marks the profile link with the user's id.
	dataUser = regexp.MustCompile(`data-user="(\d+)"`)
)

// sessionBridge keeps the client-readable nav.UserCookie in step with the
// backend session, so the client can build its Session at startup.
type sessionBridge struct {
	index  string
	client *http.Client
}

func newSessionBridge(backend *url.URL) *sessionBridge {
	return &sessionBridge{
		index: backend.ResolveReference(&url.URL{Path: "/"}).String(),
		client: &http.Client{
			Timeout: resolveTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// resolve asks the backend which user owns session.
func (b *sessionBridge) resolve(ctx context.Context, session string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.index, nil)
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session})

	resp, err := b.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("resolve user: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, errSignedOut
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read index: %w", err)
	}
	m := dataUser.FindSubmatch(body)
	if m == nil {
		return 0, errSignedOut
	}
	return strconv.ParseInt(string(m[1]), 10, 64)
}

// Wrap sets or clears the user cookie on page loads before the shell is served.
func (b *sessionBridge) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html") {
			b.sync(w, r)
		}
		next.ServeHTTP(w, r)
	})
}

func (b *sessionBridge) sync(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Cookie(SessionCookie)
	_, err := r.Cookie(nav.UserCookie)
	hasUser := err == nil

	switch {
	case session == nil && hasUser:
		http.SetCookie(w, expiredUserCookie())
	case session != nil && !hasUser:
		id, err := b.resolve(r.Context(), session.Value)
		if err != nil {
			if !errors.Is(err, errSignedOut) {
				log.Printf("session: %v", err)
			}
			return
		}
		http.SetCookie(w, userCookie(id))
	}
}

// modifyResponse runs on proxied backend responses. A named user sets the
// cookie; a new or ended backend session clears it so the next page load
// resolves it again.
func modifyResponse(resp *http.Response) error {
	if v := resp.Header.Get(UserIDHeader); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			resp.Header.Add("Set-Cookie", userCookie(id).String())
			return nil
		}
	}
	if setsSession(resp) || resp.Request.URL.Path == "/logout" {
		resp.Header.Add("Set-Cookie", expiredUserCookie().String())
	}
	return nil
}

func setsSession(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return true
		}
	}
	return false
}

// userCookie is readable from script: the client reads it into nav.Session.
// It carries no authority, the backend session does.
func userCookie(id int64) *http.Cookie {
	return &http.Cookie{
		Name:     nav.UserCookie,
		Value:    strconv.FormatInt(id, 10),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredUserCookie() *http.Cookie {
	return &http.Cookie{
		Name:   nav.UserCookie,
		Path:   "/",
		MaxAge: -1,
	}
}
