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

import "fmt"

// verify checks every red-black and structural invariant of tr.
func verify[T any](tr *TreeG[T]) error {
	if tr.root == nil {
		if tr.length != 0 {
			return fmt.Errorf("empty tree has len %d", tr.length)
		}
		return nil
	}
	if tr.root.parent != nil {
		return fmt.Errorf("root %v has parent %v", tr.root.value, tr.root.parent.value)
	}
	if tr.root.color != Black {
		return fmt.Errorf("root %v is %v", tr.root.value, tr.root.color)
	}
	count, _, err := verifyNode(tr, tr.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tr.length {
		return fmt.Errorf("len %d, but %d nodes reachable", tr.length, count)
	}
	return nil
}

// verifyNode checks the subtree at n, whose keys must lie strictly between lo
// and hi when those are set. It returns the node count and black height.
func verifyNode[T any](tr *TreeG[T], n *NodeG[T], lo, hi *T) (count, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if lo != nil && !tr.less(*lo, n.value) {
		return 0, 0, fmt.Errorf("key %v not above lower bound %v", n.value, *lo)
	}
	if hi != nil && !tr.less(n.value, *hi) {
		return 0, 0, fmt.Errorf("key %v not below upper bound %v", n.value, *hi)
	}
	for _, c := range []*NodeG[T]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, 0, fmt.Errorf("child %v of %v has a different parent link", c.value, n.value)
		}
		if n.color == Red && c.color == Red {
			return 0, 0, fmt.Errorf("red %v has red child %v", n.value, c.value)
		}
	}
	lc, lh, err := verifyNode(tr, n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := verifyNode(tr, n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("black height under %v: left %d, right %d", n.value, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
