package notify

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate beep.SampleRate = 44100
	bufferSize                 = 10

	toneFreq   = 880.0
	toneLength = 180 * time.Millisecond
	toneGap    = 120 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return speakerErr
}

// playTone plays three short beeps and blocks until they finish.
func playTone() error {
	if err := initSpeaker(); err != nil {
		return err
	}

	tone, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return err
	}

	beepLen := sampleRate.N(toneLength)
	gapLen := sampleRate.N(toneGap)

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(beepLen, tone),
		beep.Silence(gapLen),
		beep.Take(beepLen, tone),
		beep.Silence(gapLen),
		beep.Take(beepLen, tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}
