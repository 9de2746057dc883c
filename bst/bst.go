// Package bst provides an unbalanced binary search tree ordered by a
// comparison function.
package bst

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	item        T
	left, right *node[T]
}

// Tree is a binary search tree holding distinct items. The zero value is not
// usable; construct one with New, NewOrdered or FromSeq.
//
// A Tree must not be modified while one of its iterators is running.
type Tree[T any] struct {
	root    *node[T]
	length  int
	compare func(a, b T) int
}

// New returns an empty tree ordered by compare, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewOrdered returns an empty tree using the natural ordering of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// FromSeq returns a tree containing the distinct items of seq.
func FromSeq[T any](compare func(a, b T) int, seq iter.Seq[T]) *Tree[T] {
	t := New(compare)
	for item := range seq {
		t.Insert(item)
	}

	return t
}

// Compare returns the ordering function of the tree.
func (t *Tree[T]) Compare() func(a, b T) int {
	return t.compare
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Insert adds item to the tree. It reports false if an equal item was
// already present, in which case the tree is left untouched.
func (t *Tree[T]) Insert(item T) bool {
	link := &t.root
	for *link != nil {
		c := t.compare(item, (*link).item)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &node[T]{item: item}
	t.length++

	return true
}

// Remove deletes item from the tree and reports whether it was present.
func (t *Tree[T]) Remove(item T) bool {
	link := &t.root
	for *link != nil {
		c := t.compare(item, (*link).item)
		if c == 0 {
			break
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// Replace with the in-order successor, the leftmost node of the
		// right subtree.
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.item = (*succ).item
		*succ = (*succ).right
	}

	t.length--

	return true
}

// Contains reports whether item is in the tree.
func (t *Tree[T]) Contains(item T) bool {
	n := t.root
	for n != nil {
		c := t.compare(item, n.item)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest item. The second return value is false if the tree
// is empty.
func (t *Tree[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.item, true
}

// Max returns the largest item. The second return value is false if the tree
// is empty.
func (t *Tree[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.item, true
}

// InOrder returns the items in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.item) {
				return
			}

			n = n.right
		}
	}
}

// PreOrder returns the items node first, then the left subtree, then the
// right subtree. Inserting them in that order into an empty tree with the
// same ordering reproduces the shape of t.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}

		stack := []*node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.item) {
				return
			}

			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Height returns the number of nodes on the longest path from the root to a
// leaf.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
