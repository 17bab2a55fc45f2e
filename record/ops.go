package record

// Pick returns a new Record holding only the listed keys, in the order they
// were listed. Keys that r lacks are skipped.
func Pick[V any](r *Record[V], keys ...string) *Record[V] {
	out := New[V]()

	for _, k := range keys {
		if v, ok := r.Get(k).Get(); ok {
			out.Set(k, v)
		}
	}

	return out
}

// Omit returns a copy of r without the listed keys.
func Omit[V any](r *Record[V], keys ...string) *Record[V] {
	out := r.Clone()
	for _, k := range keys {
		out.Delete(k)
	}

	return out
}

// MapValues returns a new Record with the same keys, in the same order, and
// every value passed through f.
func MapValues[V, W any](r *Record[V], f func(V) W) *Record[W] {
	out := &Record[W]{
		keys:   r.Keys(),
		values: make(map[string]W, r.Len()),
	}

	for k, v := range r.All() {
		out.values[k] = f(v)
	}

	return out
}

// Filter returns a new Record with the entries for which pred is true.
func Filter[V any](r *Record[V], pred func(key string, value V) bool) *Record[V] {
	out := New[V]()

	for k, v := range r.All() {
		if pred(k, v) {
			out.Set(k, v)
		}
	}

	return out
}
