package patch

// Coalesce yields the sent value of a partial update field, or current when the field was omitted.
func Coalesce[T any](sent *T, current T) T {
	if sent == nil {
		return current
	}
	return *sent
}
