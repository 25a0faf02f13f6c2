package buffer

// Option configures a Buffer during construction.
type Option func(*Buffer)

// WithLineEnding sets the line ending style used when exporting text.
// Internal storage is always LF-normalized.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}
