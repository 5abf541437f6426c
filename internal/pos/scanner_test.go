package pos

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeRecorder struct {
	mu    sync.Mutex
	codes []string
}

func (r *codeRecorder) dispatch(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func (r *codeRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.codes...)
}

func TestScanner_FlushDispatchesBufferedCode(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(DefaultDebounce, DefaultQuiescent, rec.dispatch)
	defer s.Stop()

	s.Input("123")
	s.Input("456")
	s.Flush()

	assert.Equal(t, []string{"123456"}, rec.all())
}

func TestScanner_FlushSkipsEmptyBuffer(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(DefaultDebounce, DefaultQuiescent, rec.dispatch)
	defer s.Stop()

	s.Flush()
	s.Input("   ")
	s.Flush()

	assert.Empty(t, rec.all())
}

func TestScanner_GapResetsBuffer(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(DefaultDebounce, DefaultQuiescent, rec.dispatch)
	defer s.Stop()

	base := time.Now()
	clock := base
	s.now = func() time.Time { return clock }

	// Slow human keystrokes leak in, then the scanner fires fast.
	s.Input("a")
	clock = base.Add(500 * time.Millisecond)
	s.Input("6291041500213")
	s.Flush()

	assert.Equal(t, []string{"6291041500213"}, rec.all())
}

func TestScanner_FastKeystrokesShareOneBuffer(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(DefaultDebounce, DefaultQuiescent, rec.dispatch)
	defer s.Stop()

	base := time.Now()
	clock := base
	s.now = func() time.Time { return clock }

	for i, ch := range "629104" {
		clock = base.Add(time.Duration(i) * 10 * time.Millisecond)
		s.Input(string(ch))
	}
	s.Flush()

	assert.Equal(t, []string{"629104"}, rec.all())
}

func TestScanner_QuiescenceTimerDispatches(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(5*time.Millisecond, 10*time.Millisecond, rec.dispatch)
	defer s.Stop()

	s.Input("789")

	require.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"789"}, rec.all())
}

func TestScanner_StopCancelsPendingDispatch(t *testing.T) {
	rec := &codeRecorder{}
	s := NewScanner(5*time.Millisecond, 20*time.Millisecond, rec.dispatch)

	s.Input("789")
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.all())
}
