// Package render converts arbitrary values to their textual form and
// tracks flush boundaries for the drain worker.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// Token is a control value understood by the Buffer. Tokens mark flush
// boundaries instead of rendering as text.
type Token int

const (
	// Ln appends a newline and marks the buffer flushed.
	Ln Token = iota
	// Flush marks the buffer flushed without appending anything.
	Flush
)

// Buffer accumulates rendered values between flush boundaries. It is not
// safe for concurrent use; the drain worker is its only writer.
type Buffer struct {
	buf        []byte
	timeLayout string
	flushed    bool
	dumper     *spew.ConfigState
}

// New creates a buffer with default rendering options.
func New() *Buffer {
	return &Buffer{
		buf:        make([]byte, 0, 4096),
		timeLayout: time.RFC3339Nano,
		dumper: &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Cleaner output
			DisableCapacities:       true, // Less noise
			SortKeys:                true, // Consistent map output
		},
	}
}

// TimeLayout sets the layout used for time.Time values.
func (b *Buffer) TimeLayout(layout string) *Buffer {
	if layout != "" {
		b.timeLayout = layout
	}
	return b
}

// MaxDepth sets the maximum traversal depth for composite values.
func (b *Buffer) MaxDepth(depth int) *Buffer {
	if depth > 0 {
		b.dumper.MaxDepth = depth
	}
	return b
}

// Capacity grows the initial buffer capacity. Only meaningful before the
// first write.
func (b *Buffer) Capacity(n int) *Buffer {
	if n > cap(b.buf) {
		b.buf = append(make([]byte, 0, n), b.buf...)
	}
	return b
}

// WriteValue appends the textual form of v to the buffer. Values are
// concatenated without separators; rendering a given value always produces
// the same bytes. Composite types (structs, maps, slices, pointers) are
// dumped via go-spew with sorted keys.
func (b *Buffer) WriteValue(v any) {
	switch val := v.(type) {
	case Token:
		switch val {
		case Ln:
			b.buf = append(b.buf, '\n')
			b.flushed = true
		case Flush:
			b.flushed = true
		}
	case string:
		b.buf = appendEscaped(b.buf, val)
	case []byte:
		b.buf = appendEscaped(b.buf, string(val))
	case rune:
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], val)
		b.buf = appendEscaped(b.buf, string(enc[:n]))
	case int:
		b.buf = strconv.AppendInt(b.buf, int64(val), 10)
	case int64:
		b.buf = strconv.AppendInt(b.buf, val, 10)
	case uint:
		b.buf = strconv.AppendUint(b.buf, uint64(val), 10)
	case uint64:
		b.buf = strconv.AppendUint(b.buf, val, 10)
	case float32:
		b.buf = strconv.AppendFloat(b.buf, float64(val), 'f', -1, 32)
	case float64:
		b.buf = strconv.AppendFloat(b.buf, val, 'f', -1, 64)
	case bool:
		b.buf = strconv.AppendBool(b.buf, val)
	case nil:
		b.buf = append(b.buf, "nil"...)
	case time.Time:
		b.buf = val.AppendFormat(b.buf, b.timeLayout)
	case error:
		b.buf = appendEscaped(b.buf, val.Error())
	case fmt.Stringer:
		b.buf = appendEscaped(b.buf, val.String())
	default:
		var dump bytes.Buffer
		b.dumper.Fdump(&dump, val)
		b.buf = appendEscaped(b.buf, string(bytes.TrimSpace(dump.Bytes())))
	}
}

// Flushed reports whether a flush token was written since the last Take.
func (b *Buffer) Flushed() bool {
	return b.flushed
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Take returns the buffered bytes and resets the buffer and flush mark.
// The returned slice is reused by subsequent writes and is only valid
// until the next WriteValue call.
func (b *Buffer) Take() []byte {
	out := b.buf
	b.buf = b.buf[:0]
	b.flushed = false
	return out
}

// Reset discards buffered bytes and clears the flush mark.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.flushed = false
}
