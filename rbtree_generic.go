// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Color is the balancing tag carried by every node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// NewOrderedG creates a new red-black tree for ordered types.
func NewOrderedG[T Ordered]() *TreeG[T] {
	return NewG[T](Less[T]())
}

// NewG creates a new red-black tree ordered by less.
//
// Two keys a and b are treated as equal when !less(a, b) && !less(b, a); the
// tree holds at most one of them.
func NewG[T any](less LessFunc[T]) *TreeG[T] {
	if less == nil {
		panic("nil less func")
	}
	return &TreeG[T]{less: less}
}

// NodeG is a single key stored in a TreeG.
//
// A node owns its left and right children. The parent link is a
// back-reference only; setLeft and setRight keep it in step with the owner.
type NodeG[T any] struct {
	value  T
	color  Color
	left   *NodeG[T]
	right  *NodeG[T]
	parent *NodeG[T]
}

// Value returns the key held by n.
func (n *NodeG[T]) Value() T {
	return n.value
}

// Color returns the current color of n. It may change on later inserts.
func (n *NodeG[T]) Color() Color {
	return n.color
}

// IsRed reports whether n is a red node. Absent nodes are black.
func (n *NodeG[T]) IsRed() bool {
	return n != nil && n.color == Red
}

// Parent returns the node n hangs from, or nil for the root.
func (n *NodeG[T]) Parent() *NodeG[T] {
	return n.parent
}

// Left returns the left child of n, or nil.
func (n *NodeG[T]) Left() *NodeG[T] {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *NodeG[T]) Right() *NodeG[T] {
	return n.right
}

// Uncle returns the sibling of n's parent. It returns nil when n has no
// grandparent or when that child slot of the grandparent is empty.
func (n *NodeG[T]) Uncle() *NodeG[T] {
	if n.parent == nil || n.parent.parent == nil {
		return nil
	}
	grand := n.parent.parent
	if n.parent == grand.right {
		return grand.left
	}
	return grand.right
}

func (n *NodeG[T]) setLeft(c *NodeG[T]) {
	if c != nil {
		c.parent = n
	}
	n.left = c
}

func (n *NodeG[T]) setRight(c *NodeG[T]) {
	if c != nil {
		c.parent = n
	}
	n.right = c
}

// isLeftChild compares identity, not keys.
func (n *NodeG[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// print is used for testing/debugging purposes.
func (n *NodeG[T]) print(w io.Writer, level int) {
	indent := strings.Repeat("  ", level)
	if n == nil {
		fmt.Fprintf(w, "%sNIL\n", indent)
		return
	}
	fmt.Fprintf(w, "%sNODE:%v %v\n", indent, n.value, n.color)
	if n.left != nil || n.right != nil {
		n.left.print(w, level+1)
		n.right.print(w, level+1)
	}
}

// TreeG is a generic implementation of a red-black tree.
//
// TreeG stores unique keys of type T in an ordered structure whose height
// stays within 2*log2(n+1). Keys can be inserted and looked up; there is no
// removal.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type TreeG[T any] struct {
	root   *NodeG[T]
	length int
	less   LessFunc[T]
}

// Root returns the root node, or nil if the tree is empty.
func (t *TreeG[T]) Root() *NodeG[T] {
	return t.root
}

// Len returns the number of keys currently in the tree.
func (t *TreeG[T]) Len() int {
	return t.length
}

// Insert adds key to the tree and returns the node holding it. If an equal
// key is already present the tree is left untouched and Insert returns nil.
func (t *TreeG[T]) Insert(key T) *NodeG[T] {
	if t.root == nil {
		t.root = &NodeG[T]{value: key, color: Black}
		t.length++
		return t.root
	}
	var created *NodeG[T]
	n := t.root
	for created == nil {
		switch {
		case t.less(key, n.value):
			if n.left == nil {
				created = &NodeG[T]{value: key, color: Red}
				n.setLeft(created)
			} else {
				n = n.left
			}
		case t.less(n.value, key):
			if n.right == nil {
				created = &NodeG[T]{value: key, color: Red}
				n.setRight(created)
			} else {
				n = n.right
			}
		default:
			return nil
		}
	}
	t.length++
	if n.IsRed() {
		t.fixup(created)
		t.root.color = Black
	}
	return created
}

// fixup restores the red-black properties once n, a red node, sits below a
// red parent. Red may be pushed up the tree; the caller blackens the root.
func (t *TreeG[T]) fixup(n *NodeG[T]) {
	parent := n.parent
	grand := parent.parent
	switch uncle := n.Uncle(); {
	case uncle.IsRed():
		parent.color = Black
		uncle.color = Black
		grand.color = Red
		if grand.parent.IsRed() && grand.Uncle() != nil {
			t.fixup(grand)
		}
	case n.isLeftChild() == parent.isLeftChild():
		// zig-zig: parent takes grand's place and grand's color.
		t.rotateUp(parent)
		parent.color, grand.color = grand.color, parent.color
	default:
		// zig-zag: lifting n turns parent into the outer grandchild.
		t.rotateUp(n)
		t.fixup(parent)
	}
}

// rotateUp lifts x into the position of its parent p. The child of x that
// faces p moves across to p, and p becomes the child of x on that side.
func (t *TreeG[T]) rotateUp(x *NodeG[T]) {
	p := x.parent
	above := p.parent
	if x == p.left {
		p.setLeft(x.right)
		x.setRight(p)
	} else {
		p.setRight(x.left)
		x.setLeft(p)
	}
	switch {
	case above == nil:
		t.root = x
		x.parent = nil
	case above.left == p:
		above.setLeft(x)
	default:
		above.setRight(x)
	}
}

// Find looks for key in the tree and returns the node holding it, or nil if
// no equal key is present.
func (t *TreeG[T]) Find(key T) *NodeG[T] {
	for n := t.root; n != nil; {
		switch {
		case n.left != nil && t.less(key, n.value):
			n = n.left
		case n.right != nil && t.less(n.value, key):
			n = n.right
		case !t.less(key, n.value) && !t.less(n.value, key):
			return n
		default:
			return nil
		}
	}
	return nil
}

// Has returns true if the given key is in the tree.
func (t *TreeG[T]) Has(key T) bool {
	return t.Find(key) != nil
}

// print is used for testing/debugging purposes.
func (t *TreeG[T]) print(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	t.root.print(w, 0)
}
