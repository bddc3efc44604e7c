package mux

// diagnosticsLimit caps how much of the engine's output is kept for error
// reporting. ffmpeg is chatty; only the tail is diagnostic.
const diagnosticsLimit = 8 << 10

// tailBuffer is a writer that retains at most the last limit bytes written.
type tailBuffer struct {
	limit int
	data  []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	if overflow := len(b.data) - b.limit; overflow > 0 {
		b.data = b.data[overflow:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.data)
}
