package testutil

// ByteStream reads bytes sequentially from a byte slice.
//
// Fuzz tests use it to deterministically derive operation sequences
// from fuzz input. When the stream is exhausted, all reads return zero
// values, so the same input always produces the same sequence.
type ByteStream struct {
	bytes []byte
	pos   int
}

// NewByteStream creates a stream over the given bytes.
func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{bytes: b}
}

// HasMore reports whether unread bytes remain.
func (s *ByteStream) HasMore() bool {
	return s.pos < len(s.bytes)
}

// NextByte returns the next byte, or 0 if exhausted.
func (s *ByteStream) NextByte() byte {
	if s.pos >= len(s.bytes) {
		return 0
	}

	v := s.bytes[s.pos]
	s.pos++

	return v
}

// NextInt returns a non-negative int below maxVal derived from the
// next byte.
func (s *ByteStream) NextInt(maxVal int) int {
	if maxVal <= 0 {
		return 0
	}

	return int(s.NextByte()) % maxVal
}

// NextString returns a lowercase string of length 1-maxLen.
func (s *ByteStream) NextString(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	length := 1 + s.NextInt(maxLen)
	out := make([]byte, length)

	for i := range out {
		out[i] = 'a' + (s.NextByte() % 26)
	}

	return string(out)
}
