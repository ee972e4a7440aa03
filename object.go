// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

// Object is the reference-count base shared by GL objects. The count starts
// at zero: the creating context takes the first reference with AddRef.
//
// The counter is a plain integer. Objects belong to the goroutine owning
// the API context; concurrent mutation requires external synchronization.
type Object struct {
	refs int
}

// AddRef takes a reference.
func (o *Object) AddRef() {
	o.refs++
}

// release drops a reference and reports whether the count reached zero.
// The owning type destroys its resources when release returns true.
func (o *Object) release() bool {
	if o.refs > 0 {
		o.refs--
	}
	return o.refs == 0
}

// RefCount returns the current reference count.
func (o *Object) RefCount() int {
	return o.refs
}

// NamedObject is an Object with a stable integer name, the identity the
// API layer hands out (glGenRenderbuffers). The name never changes over
// the object's lifetime, even as its backing storage is swapped.
type NamedObject struct {
	Object
	name uint32
}

// Name returns the object's stable identity.
func (n *NamedObject) Name() uint32 {
	return n.name
}
