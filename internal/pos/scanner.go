package pos

import (
	"strings"
	"sync"
	"time"
)

const (
	// Keystrokes closer together than this belong to the same scan;
	// hardware scanners type far faster than a human.
	DefaultDebounce = 100 * time.Millisecond
	// After this much silence the buffer is dispatched as one code.
	DefaultQuiescent = 150 * time.Millisecond
)

// Scanner turns the keystroke stream of a barcode scanner into whole codes.
// Input may be called from the UI event loop; dispatch fires on a timer
// goroutine once the scanner goes quiet.
type Scanner struct {
	mu        sync.Mutex
	debounce  time.Duration
	quiescent time.Duration
	buffer    strings.Builder
	last      time.Time
	timer     *time.Timer
	dispatch  func(code string)
	now       func() time.Time
}

func NewScanner(debounce, quiescent time.Duration, dispatch func(code string)) *Scanner {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if quiescent <= 0 {
		quiescent = DefaultQuiescent
	}
	return &Scanner{
		debounce:  debounce,
		quiescent: quiescent,
		dispatch:  dispatch,
		now:       time.Now,
	}
}

// Input feeds keystrokes. A gap longer than the debounce window discards the
// stale buffer and starts a new scan.
func (s *Scanner) Input(chunk string) {
	if chunk == "" {
		return
	}

	s.mu.Lock()
	now := s.now()
	if !s.last.IsZero() && now.Sub(s.last) > s.debounce {
		s.buffer.Reset()
	}
	s.buffer.WriteString(chunk)
	s.last = now

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiescent, s.Flush)
	s.mu.Unlock()
}

// Flush dispatches the buffered code immediately. Called by the quiescence
// timer, or directly when the scanner sends a terminator key.
func (s *Scanner) Flush() {
	s.mu.Lock()
	code := strings.TrimSpace(s.buffer.String())
	s.buffer.Reset()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if code != "" {
		s.dispatch(code)
	}
}

// Stop cancels any pending dispatch and drops the buffer.
func (s *Scanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.buffer.Reset()
}
