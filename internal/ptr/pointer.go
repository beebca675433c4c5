// Package ptr contains a very small helper function to create pointers
// from non-pointer values. This is to help with docker api option
// structs which use pointers to tell unset fields apart from zero.
package ptr

func Pointer[T any](v T) *T {
	return &v
}
