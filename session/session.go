// Package session provides a scoped, explicitly released in-memory holder
// for the secret phrase, modelling the "remember until the session ends"
// behavior of an interactive front end.
//
// The holder is strictly opt-in: nothing is remembered unless the caller
// asks, nothing is ever written to disk, and the secret is zeroized on
// [Holder.Forget], on TTL expiry, and on every overwrite. A caller wanting
// the phrase gone calls Forget — there is no background reaper; expiry is
// enforced lazily on access, at which point the stale secret is wiped.
package session

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotRemembered is returned by [Holder.Phrase] when no phrase is held,
	// either because none was remembered or because it expired or was
	// forgotten.
	ErrNotRemembered = errors.New("session: no phrase remembered")

	// ErrEmptyPhrase is returned by [Holder.Remember] for a blank phrase;
	// remembering nothing is always a caller bug.
	ErrEmptyPhrase = errors.New("session: phrase must not be empty")
)

// Holder retains one secret phrase in memory for a bounded lifetime.
//
// All methods are safe for concurrent use. The holder keeps its own byte
// copy of the phrase so Forget can zeroize it; strings previously returned
// by [Holder.Phrase] are immutable Go strings outside the holder's control
// and remain the caller's responsibility.
type Holder struct {
	mu      sync.Mutex
	phrase  []byte
	expires time.Time // zero means no expiry
	ttl     time.Duration
}

// NewHolder creates an empty Holder. A positive ttl bounds how long a
// remembered phrase stays accessible; ttl <= 0 keeps it until [Holder.Forget]
// or process exit.
func NewHolder(ttl time.Duration) *Holder {
	return &Holder{ttl: ttl}
}

// Remember stores phrase, replacing (and zeroizing) any previous secret and
// restarting the TTL clock.
func (h *Holder) Remember(phrase string) error {
	if phrase == "" {
		return ErrEmptyPhrase
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.wipeLocked()
	h.phrase = []byte(phrase)
	if h.ttl > 0 {
		h.expires = time.Now().Add(h.ttl)
	} else {
		h.expires = time.Time{}
	}
	return nil
}

// Phrase returns the remembered phrase. An expired secret is treated exactly
// like a forgotten one: it is wiped on the spot and [ErrNotRemembered] is
// returned.
func (h *Holder) Phrase() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.phrase == nil {
		return "", ErrNotRemembered
	}
	if !h.expires.IsZero() && time.Now().After(h.expires) {
		h.wipeLocked()
		return "", ErrNotRemembered
	}
	return string(h.phrase), nil
}

// Remembered reports whether a non-expired phrase is currently held, without
// extending or consuming it.
func (h *Holder) Remembered() bool {
	_, err := h.Phrase()
	return err == nil
}

// Forget zeroizes and releases the held phrase. Calling Forget on an empty
// holder is a no-op.
func (h *Holder) Forget() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.wipeLocked()
}

// TTL returns the configured lifetime (zero or negative means unbounded).
func (h *Holder) TTL() time.Duration { return h.ttl }

// wipeLocked overwrites and drops the secret. Callers must hold mu.
func (h *Holder) wipeLocked() {
	for i := range h.phrase {
		h.phrase[i] = 0
	}
	h.phrase = nil
	h.expires = time.Time{}
}
