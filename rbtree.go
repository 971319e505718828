// Copyright 2014 Google Inc.
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

// Package rbtree implements an in-memory red-black tree.
//
// rbtree keeps unique keys in a binary search tree whose nodes carry a red or
// black tag. Every insert walks down to the new key's position, links a red
// node there and then recolors and rotates on the way back up so that
//   - the root is black,
//   - no red node has a red child,
//   - every path from a node down to an empty child slot crosses the same
//     number of black nodes.
//
// Together these bound the height of a tree of n keys by 2*log2(n+1), so
// Insert and Find run in O(log n) no matter the order keys arrive in.
//
// The tree only grows: there is no deletion, range query or iteration. Nodes
// are exposed as read-only handles so callers can inspect the shape the
// balancing produced.
//
// There are two forms; those suffixed with 'G' are generics, usable for any
// type, and require a passed-in "less" function to define their ordering.
// Tree and Node are the int64 instantiations, ordered by '<'.
package rbtree

// Tree is a red-black tree of int64 keys.
type Tree = TreeG[int64]

// Node is a single key in a Tree.
type Node = NodeG[int64]

// New creates an empty int64 red-black tree.
func New() *Tree {
	return NewOrderedG[int64]()
}
