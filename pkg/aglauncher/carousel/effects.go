package carousel

import "time"

// SlideKind tags why a slide was queued.
type SlideKind int

const (
	SlideNavigation SlideKind = iota
	SlideDemo
)

func (k SlideKind) String() string {
	switch k {
	case SlideNavigation:
		return "navigation"
	case SlideDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// Slide moves one card between two relative slots.
// Slot 0 is the selected card, -1 and +1 its visible neighbours, and
// anything further out is off screen.
type Slide struct {
	Kind     SlideKind
	Entry    int // catalog index of the card being drawn
	From     int
	To       int
	Elapsed  time.Duration
	Duration time.Duration
}

// Advance adds dt to the slide and reports whether it is still running.
func (s *Slide) Advance(dt time.Duration) bool {
	s.Elapsed += dt
	return !s.Done()
}

// Done reports whether the slide has run its full duration.
func (s *Slide) Done() bool {
	return s.Elapsed >= s.Duration
}

// Progress returns the completed fraction in [0, 1].
func (s *Slide) Progress() float64 {
	if s.Duration <= 0 || s.Elapsed >= s.Duration {
		return 1
	}
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Elapsed) / float64(s.Duration)
}

// X returns the interpolated horizontal position as a fraction of the screen width.
func (s *Slide) X() float64 {
	start, end := SlotX(s.From), SlotX(s.To)
	p := s.Progress()
	if p >= 1 {
		return end
	}
	return start + (end-start)*p
}

// Alpha returns the opacity of the card. The card arriving at the center is opaque.
func (s *Slide) Alpha() float64 {
	if s.To == 0 {
		return SelectedAlpha
	}
	return NeighbourAlpha
}

// QueueState is the state of the effect queue.
type QueueState int

const (
	StateIdle QueueState = iota
	StateAnimatingNavigation
	StateAnimatingDemo
)

func (s QueueState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimatingNavigation:
		return "animating-navigation"
	case StateAnimatingDemo:
		return "animating-demo"
	default:
		return "unknown"
	}
}

// slotWindow is the number of cards animated per transition: the three
// visible ones plus the one entering from off screen.
const slotWindow = 4

// EffectQueue holds the in-flight slide animations.
type EffectQueue struct {
	slides []Slide
}

// Idle reports whether no slide is running.
func (q *EffectQueue) Idle() bool {
	return len(q.slides) == 0
}

// State derives the queue state from the running slides.
func (q *EffectQueue) State() QueueState {
	if len(q.slides) == 0 {
		return StateIdle
	}
	if q.slides[0].Kind == SlideDemo {
		return StateAnimatingDemo
	}
	return StateAnimatingNavigation
}

// Slides returns the running slides in draw order.
func (q *EffectQueue) Slides() []Slide {
	return q.slides
}

// Len returns the number of running slides.
func (q *EffectQueue) Len() int {
	return len(q.slides)
}

// Clear drops every slide at once.
func (q *EffectQueue) Clear() {
	q.slides = q.slides[:0]
}

// Advance moves every slide forward by dt and drops the finished ones.
func (q *EffectQueue) Advance(dt time.Duration) {
	kept := q.slides[:0]
	for i := range q.slides {
		if q.slides[i].Advance(dt) {
			kept = append(kept, q.slides[i])
		}
	}
	q.slides = kept
}

// EnqueueShift queues the four slides that move every visible card one slot
// against direction. index is the cursor before it moves; direction must be
// -1 or +1.
func (q *EffectQueue) EnqueueShift(kind SlideKind, index WrappedIndex, direction int, duration time.Duration) {
	first := -1
	if direction < 0 {
		first = -2
	}

	for rel := first; rel < first+slotWindow; rel++ {
		q.slides = append(q.slides, Slide{
			Kind:     kind,
			Entry:    index.Offset(rel),
			From:     rel,
			To:       rel - direction,
			Duration: duration,
		})
	}
}
