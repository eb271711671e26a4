package core

import "time"

// FramePacer keeps a loop running at a steady frames-per-second rate by
// sleeping away whatever remains of each frame interval.
type FramePacer struct {
	frame time.Duration
	last  time.Time
}

// NewFramePacer constructs a pacer targeting the given FPS.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 32
	}
	return &FramePacer{frame: time.Second / time.Duration(fps)}
}

// Wait sleeps until the current frame interval has elapsed since the previous
// call. The first call returns immediately.
func (p *FramePacer) Wait() {
	now := time.Now()
	if !p.last.IsZero() {
		if rest := p.frame - now.Sub(p.last); rest > 0 {
			time.Sleep(rest)
			now = time.Now()
		}
	}
	p.last = now
}
