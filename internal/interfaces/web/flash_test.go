package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeys() (hash, block []byte) {
	hash = make([]byte, 32)
	block = make([]byte, 32)
	for i := range hash {
		hash[i] = byte(i)
		block[i] = byte(31 - i)
	}
	return hash, block
}

func TestFlashRoundTrip(t *testing.T) {
	store := NewFlashStore(testKeys())

	rec := httptest.NewRecorder()
	require.NoError(t, store.Set(rec, Flash{Kind: "success", Message: "booked"}))

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	fl, ok := store.Pop(rec2, req)
	require.True(t, ok)
	assert.Equal(t, "success", fl.Kind)
	assert.Equal(t, "booked", fl.Message)

	// Pop must clear the cookie.
	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestFlashMissingCookie(t *testing.T) {
	store := NewFlashStore(testKeys())
	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	_, ok := store.Pop(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestFlashTamperedCookie(t *testing.T) {
	store := NewFlashStore(testKeys())
	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "forged"})
	_, ok := store.Pop(httptest.NewRecorder(), req)
	assert.False(t, ok)
}
