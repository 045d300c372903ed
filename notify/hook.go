package notify

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/timer"
)

// Hook runs the user's session command after a segment is finished. The
// command is started and not waited for.
type Hook struct {
	start   func(cmd *exec.Cmd) error
	command string
}

// NewHook returns a Hook for command. An empty command disables it.
func NewHook(command string) *Hook {
	return &Hook{
		command: command,
		start:   startDetached,
	}
}

// SetCommand replaces the command.
func (h *Hook) SetCommand(command string) {
	h.command = command
}

// Run starts the command. POMO_SESSION holds the finished session and
// POMO_NEXT the one that follows.
func (h *Hook) Run(ended, next timer.Session) error {
	if strings.TrimSpace(h.command) == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(h.command)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		"POMO_SESSION="+sessionEnv(ended),
		"POMO_NEXT="+sessionEnv(next),
	)

	if err := h.start(cmd); err != nil {
		return fmt.Errorf("unable to run session_cmd: %w", err)
	}

	return nil
}

func sessionEnv(s timer.Session) string {
	b, err := s.MarshalText()
	if err != nil {
		return ""
	}

	return string(b)
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("session_cmd exited with error", slog.Any("error", err))
		}
	}()

	return nil
}
