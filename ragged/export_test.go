package ragged

// CorruptOffsetsForTest overwrites offsets[i] so tests can exercise Validate.
func CorruptOffsetsForTest[T any](m *Matrix[T], i, v int) {
	m.offsets[i] = v
}
