package session_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fareedkhan-27/password-mint/session"
)

func TestHolder_RememberAndPhrase(t *testing.T) {
	h := session.NewHolder(0)
	if err := h.Remember("my secret phrase"); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	got, err := h.Phrase()
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}
	if got != "my secret phrase" {
		t.Errorf("Phrase = %q", got)
	}
	if !h.Remembered() {
		t.Error("Remembered() = false after Remember")
	}
}

func TestHolder_EmptyHolder(t *testing.T) {
	h := session.NewHolder(time.Minute)
	if _, err := h.Phrase(); !errors.Is(err, session.ErrNotRemembered) {
		t.Errorf("expected ErrNotRemembered, got %v", err)
	}
	if h.Remembered() {
		t.Error("Remembered() = true on empty holder")
	}
}

func TestHolder_RememberEmptyPhrase(t *testing.T) {
	h := session.NewHolder(time.Minute)
	if err := h.Remember(""); !errors.Is(err, session.ErrEmptyPhrase) {
		t.Errorf("expected ErrEmptyPhrase, got %v", err)
	}
}

func TestHolder_Forget(t *testing.T) {
	h := session.NewHolder(0)
	_ = h.Remember("secret")
	h.Forget()
	if _, err := h.Phrase(); !errors.Is(err, session.ErrNotRemembered) {
		t.Errorf("expected ErrNotRemembered after Forget, got %v", err)
	}
	// Forget on an already-empty holder is a no-op.
	h.Forget()
}

func TestHolder_Overwrite(t *testing.T) {
	h := session.NewHolder(0)
	_ = h.Remember("first")
	_ = h.Remember("second")
	got, err := h.Phrase()
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}
	if got != "second" {
		t.Errorf("Phrase = %q, want %q", got, "second")
	}
}

func TestHolder_TTLExpiry(t *testing.T) {
	h := session.NewHolder(10 * time.Millisecond)
	_ = h.Remember("short-lived")
	if !h.Remembered() {
		t.Fatal("phrase should be available immediately after Remember")
	}
	time.Sleep(25 * time.Millisecond)
	if _, err := h.Phrase(); !errors.Is(err, session.ErrNotRemembered) {
		t.Errorf("expected ErrNotRemembered after TTL, got %v", err)
	}
}

func TestHolder_RememberRestartsTTL(t *testing.T) {
	h := session.NewHolder(40 * time.Millisecond)
	_ = h.Remember("first")
	time.Sleep(25 * time.Millisecond)
	_ = h.Remember("second")
	time.Sleep(25 * time.Millisecond)
	// 50ms since the first Remember but only 25ms since the second.
	if got, err := h.Phrase(); err != nil || got != "second" {
		t.Errorf("Phrase = %q, %v; want %q, nil", got, err, "second")
	}
}

func TestHolder_ZeroTTLNeverExpires(t *testing.T) {
	h := session.NewHolder(0)
	_ = h.Remember("durable")
	time.Sleep(15 * time.Millisecond)
	if !h.Remembered() {
		t.Error("ttl<=0 holder must keep the phrase until Forget")
	}
}

func TestHolder_ConcurrentAccess(t *testing.T) {
	h := session.NewHolder(time.Minute)
	_ = h.Remember("shared")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = h.Phrase()
				_ = h.Remember("shared")
			}
		}()
	}
	wg.Wait()
	if got, _ := h.Phrase(); got != "shared" {
		t.Errorf("Phrase = %q after concurrent access", got)
	}
}
