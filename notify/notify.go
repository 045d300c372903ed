// Package notify tells the user that a segment has run out: a desktop
// notification, an alert tone and an optional user command
package notify

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/pomo/timer"
)

// Desktop shows a desktop notification and plays the alert tone when a
// segment expires. Both run in the background.
type Desktop struct {
	send     func(title, message, icon string) error
	play     func() error
	iconPath string
	notify   bool
	sound    bool
}

// NewDesktop returns a Desktop. appDir is the name of the application's
// xdg data directory where an optional static/icon.png is looked up.
func NewDesktop(appDir string, notify, sound bool) *Desktop {
	// iconPath is empty if the file is not found
	iconPath, _ := xdg.SearchDataFile(filepath.Join(appDir, "static", "icon.png"))

	return &Desktop{
		send:     beeep.Notify,
		play:     playTone,
		iconPath: iconPath,
		notify:   notify,
		sound:    sound,
	}
}

// Configure switches the notification and the tone on or off.
func (d *Desktop) Configure(notify, sound bool) {
	d.notify = notify
	d.sound = sound
}

// SegmentExpired implements timer.Notifier.
func (d *Desktop) SegmentExpired(ended timer.Session, message string) {
	if d.notify {
		title := ended.String() + " is finished"

		go func() {
			err := d.send(title, message, d.iconPath)
			if err != nil {
				slog.Error(
					"unable to display notification",
					slog.Any("error", err),
				)
			}
		}()
	}

	if d.sound {
		go func() {
			if err := d.play(); err != nil {
				slog.Error("unable to play alert tone", slog.Any("error", err))
			}
		}()
	}
}
