package value

import "unsafe"

// ptrTo stores a slice header behind an unsafe.Pointer so Value can keep
// its own representation (typ, v, p) fixed-size regardless of element
// kind, matching gql.Value's layout.
func ptrTo[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(&s)
}
