package termglass

// Blink cadences in milliseconds. The caret toggles at roughly twice the
// character blink rate; both values match DOS-era text-mode timings.
const (
	CaretBlinkInterval     = 266
	CharacterBlinkInterval = 555
)

// Blink is a caller-driven blink clock. The renderer never reads a clock
// itself — blink state enters a frame as an explicit boolean — but
// callers can use Blink to derive that boolean from their own time base.
type Blink struct {
	interval int64 // ms
	on       bool
	last     int64
}

// NewBlink creates a blink clock that toggles every interval
// milliseconds.
func NewBlink(interval int64) *Blink {
	return &Blink{interval: interval}
}

// Update advances the clock to nowMs and reports whether the on/off state
// toggled since the previous call. A toggle means the frame needs a
// redraw.
func (b *Blink) Update(nowMs int64) bool {
	if nowMs-b.last < b.interval {
		return false
	}
	b.last = nowMs
	b.on = !b.on
	return true
}

// On returns the current blink phase.
func (b *Blink) On() bool { return b.on }
