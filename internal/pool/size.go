package pool

import "unsafe"

// recordSizeOf returns unsafe.Sizeof(t) boxed behind a generic helper so
// Pool[T].RecordSize can report the record layout size without every
// caller importing unsafe directly.
func recordSizeOf[T any](t T) int {
	return int(unsafe.Sizeof(t))
}
