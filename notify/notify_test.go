package notify

import (
	"errors"
	"os/exec"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/timer"
)

type sent struct {
	title   string
	message string
}

func newTestDesktop(notify, sound bool) (*Desktop, chan sent, chan struct{}) {
	notes := make(chan sent, 1)
	tones := make(chan struct{}, 1)

	d := &Desktop{
		send: func(title, message, _ string) error {
			notes <- sent{title, message}
			return nil
		},
		play: func() error {
			tones <- struct{}{}
			return nil
		},
		notify: notify,
		sound:  sound,
	}

	return d, notes, tones
}

func TestDesktopSegmentExpired(t *testing.T) {
	d, notes, tones := newTestDesktop(true, true)

	d.SegmentExpired(timer.Work, "stretch")

	select {
	case got := <-notes:
		assert.Equal(t, sent{"Work is finished", "stretch"}, got)
	case <-time.After(time.Second):
		t.Fatal("notification not sent")
	}

	select {
	case <-tones:
	case <-time.After(time.Second):
		t.Fatal("tone not played")
	}
}

func TestDesktopDisabled(t *testing.T) {
	d, notes, tones := newTestDesktop(true, true)
	d.Configure(false, false)

	d.SegmentExpired(timer.Break, "back to work")

	select {
	case <-notes:
		t.Fatal("unexpected notification")
	case <-tones:
		t.Fatal("unexpected tone")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHookRun(t *testing.T) {
	var (
		mu  sync.Mutex
		got *exec.Cmd
	)

	h := NewHook(`notify-send "Session over" --urgency=low`)
	h.start = func(cmd *exec.Cmd) error {
		mu.Lock()
		defer mu.Unlock()

		got = cmd

		return nil
	}

	require.NoError(t, h.Run(timer.Work, timer.LongBreak))

	require.NotNil(t, got)
	assert.Equal(
		t,
		[]string{"notify-send", "Session over", "--urgency=low"},
		got.Args,
	)
	assert.True(t, slices.Contains(got.Env, "POMO_SESSION=work"))
	assert.True(t, slices.Contains(got.Env, "POMO_NEXT=long_break"))
}

func TestHookEmptyCommand(t *testing.T) {
	h := NewHook("   ")
	h.start = func(_ *exec.Cmd) error {
		t.Fatal("command should not start")
		return nil
	}

	assert.NoError(t, h.Run(timer.Work, timer.Break))
}

func TestHookErrors(t *testing.T) {
	h := NewHook(`echo "unterminated`)
	assert.Error(t, h.Run(timer.Work, timer.Break))

	h.SetCommand("true")
	h.start = func(_ *exec.Cmd) error {
		return errors.New("boom")
	}

	assert.Error(t, h.Run(timer.Work, timer.Break))
}
