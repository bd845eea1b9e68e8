package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "fario-session"

	favoritesSessionKey = "favorites"
)

// FavoriteStore owns the visitor's favorites set. The set lives in the
// session cookie and is handed to page data per request, never held in a
// package-level variable.
type FavoriteStore interface {
	Favorites(r *http.Request) []int
	IsFavorite(r *http.Request, productID int) bool
	Toggle(w http.ResponseWriter, r *http.Request, productID int) (bool, error)
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieFavoriteStore struct {
	store *sessions.CookieStore
}

func NewCookieFavoriteStore(keyPairs ...[]byte) *CookieFavoriteStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieFavoriteStore{store: store}
}

func (c *CookieFavoriteStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session
}

func (c *CookieFavoriteStore) Favorites(r *http.Request) []int {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	ids, ok := session.Values[favoritesSessionKey].([]int)
	if !ok {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (c *CookieFavoriteStore) IsFavorite(r *http.Request, productID int) bool {
	for _, id := range c.Favorites(r) {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle flips membership of productID and reports the new state.
func (c *CookieFavoriteStore) Toggle(w http.ResponseWriter, r *http.Request, productID int) (bool, error) {
	session := c.getSession(r)
	if session == nil {
		return false, nil
	}

	ids, _ := session.Values[favoritesSessionKey].([]int)
	kept := make([]int, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, productID)
	}

	session.Values[favoritesSessionKey] = kept
	if err := session.Save(r, w); err != nil {
		return false, err
	}
	return !removed, nil
}

func (c *CookieFavoriteStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	delete(session.Values, favoritesSessionKey)
	return session.Save(r, w)
}
