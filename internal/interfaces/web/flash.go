package web

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const flashCookie = "yoyaku_flash"

// Flash is a one-shot message carried across the POST/redirect/GET hop.
type Flash struct {
	Kind    string
	Message string
}

type FlashStore struct{ sc *securecookie.SecureCookie }

func NewFlashStore(hashKey, blockKey []byte) *FlashStore {
	return &FlashStore{sc: securecookie.New(hashKey, blockKey)}
}

func (f *FlashStore) Set(w http.ResponseWriter, fl Flash) error {
	encoded, err := f.sc.Encode(flashCookie, fl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name: flashCookie, Value: encoded, Path: "/",
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop reads and clears the flash. A missing or undecodable cookie reads as
// no flash.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name: flashCookie, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	var fl Flash
	if err := f.sc.Decode(flashCookie, c.Value, &fl); err != nil {
		return Flash{}, false
	}
	if fl.Message == "" {
		return Flash{}, false
	}
	return fl, true
}
