package stream

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"
	"time"
)

// Frame is one rendered picture of the scene.
type Frame struct {
	Index   uint64
	Elapsed time.Duration
	Image   image.Image

	once    sync.Once
	encoded []byte
	err     error
}

// NewFrame wraps a rendered image.
func NewFrame(index uint64, elapsed time.Duration, img image.Image) *Frame {
	f := new(Frame)
	f.Index = index
	f.Elapsed = elapsed
	f.Image = img
	return f
}

// MarshalBinary encodes the frame as PNG. The encoding is done once and
// shared by every reader.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	f.once.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, f.Image); err != nil {
			f.err = fmt.Errorf("encode frame %d: %w", f.Index, err)
			return
		}
		f.encoded = buf.Bytes()
	})
	return f.encoded, f.err
}
