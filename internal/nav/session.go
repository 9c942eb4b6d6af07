package nav

import (
	"strconv"

	"github.com/kidandcat/geolog/internal/gateway"
)

// UserCookie carries the signed-in user's id. The shell server sets it from
// the backend session; it is a hint for rendering, not a credential.
const UserCookie = "geolog_user"

// Session is the application-wide signed-in user, read once at startup.
type Session struct {
	UserID int64
}

func SessionFromCookies(header string) Session {
	id, err := strconv.ParseInt(gateway.CookieValue(header, UserCookie), 10, 64)
	if err != nil || id < 0 {
		return Session{}
	}
	return Session{UserID: id}
}

func (s Session) SignedIn() bool {
	return s.UserID > 0
}
