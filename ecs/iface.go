package ecs

import "unsafe"

// iface represents the internal memory layout of an interface value.
// View uses it to read the pointer word of a boxed *T without reflection.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
