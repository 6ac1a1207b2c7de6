package ani

import (
	"time"
)

// Step is one frame of the loop: the elapsed time before the frame and how
// much time the frame covers.
type Step struct {
	Previous time.Duration
	Delta    time.Duration
}

// Next is the elapsed time once the step has been taken.
func (s Step) Next() time.Duration {
	return s.Previous + s.Delta
}
