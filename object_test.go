// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "testing"

func TestObjectRefCounting(t *testing.T) {
	var o Object

	if o.RefCount() != 0 {
		t.Fatalf("initial RefCount() = %d, want 0", o.RefCount())
	}

	o.AddRef()
	o.AddRef()
	if o.RefCount() != 2 {
		t.Errorf("RefCount() = %d after two AddRefs, want 2", o.RefCount())
	}

	if o.release() {
		t.Error("release() = true with a reference remaining")
	}
	if !o.release() {
		t.Error("release() = false at the last reference")
	}

	// Over-release stays at zero and keeps reporting destruction.
	if !o.release() {
		t.Error("release() = false on over-release")
	}
	if o.RefCount() != 0 {
		t.Errorf("RefCount() = %d after over-release, want 0", o.RefCount())
	}
}

func TestNamedObjectName(t *testing.T) {
	n := NamedObject{name: 7}

	if n.Name() != 7 {
		t.Errorf("Name() = %d, want 7", n.Name())
	}
	n.AddRef()
	n.release()
	if n.Name() != 7 {
		t.Errorf("Name() = %d after ref churn, want 7", n.Name())
	}
}
