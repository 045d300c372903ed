package timer

// breakPhrases are shown when a work segment runs out.
var breakPhrases = [...]string{
	"Time to step away. Stretch your back and rest your eyes.",
	"Work block done. Grab some water and look out a window.",
	"Stand up and shake out your hands. The screen will wait.",
	"Nice stretch of focus. Take a short walk before the next one.",
	"Roll your shoulders and take three slow breaths.",
	"Pause here. Refill your cup and come back fresh.",
	"You earned a break. Let your mind wander for a bit.",
}

// workPhrases are shown when a break runs out.
var workPhrases = [...]string{
	"Break is over. Pick up the active task where you left it.",
	"Back to it. One focused block at a time.",
	"Settle in and silence the distractions. Work time.",
	"Refreshed? Start the next work segment when ready.",
	"Time to focus again. Close the extra tabs.",
	"The break clock ran out. Let's get the next task moving.",
	"Deep breath, then dive back into the work.",
}

// phrase returns a reminder for the end of a segment of session s.
func (e *Engine) phrase(s Session) string {
	if s == Work {
		return breakPhrases[e.pick(len(breakPhrases))]
	}

	return workPhrases[e.pick(len(workPhrases))]
}
