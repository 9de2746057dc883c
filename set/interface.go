package set

import "iter"

type Interface[T any] interface {
	// Adds an item to the set.
	Add(T) bool

	// Removes an item from the set.
	Remove(T) bool

	// Removes all items from the set.
	Clear()

	// Returns whether the provided items are in the set.
	Contains(...T) bool

	// Returns the number of items in the set.
	Len() int

	// Returns the items in ascending order.
	All() iter.Seq[T]

	// Iterates over items in ascending order and executes the provided
	// function against each item until it returns true.
	ForEach(func(T) bool)

	// Provides a string representation of the set.
	String() string

	// Returns the set as a sorted slice.
	ToSlice() []T

	// Adds every item of the sequence to the set.
	UnionWith(iter.Seq[T]) error

	// Keeps only the items that are also in the sequence.
	IntersectWith(iter.Seq[T]) error

	// Removes every item of the sequence from the set.
	ExceptWith(iter.Seq[T]) error

	// Keeps the items that are in either the set or the sequence, but not
	// both.
	SymmetricExceptWith(iter.Seq[T]) error

	// Determines if every item in this set is in the sequence.
	IsSubsetOf(iter.Seq[T]) (bool, error)

	// Determines if every item in the sequence is in this set.
	IsSupersetOf(iter.Seq[T]) (bool, error)

	// Determines if this set is a subset of the sequence and the sequence has
	// more distinct items.
	IsProperSubsetOf(iter.Seq[T]) (bool, error)

	// Determines if the sequence is a subset of this set and this set has
	// more items.
	IsProperSupersetOf(iter.Seq[T]) (bool, error)

	// Determines if the set and the sequence share at least one item.
	Overlaps(iter.Seq[T]) (bool, error)

	// Determines if the set and the sequence hold the same distinct items.
	SetEquals(iter.Seq[T]) (bool, error)

	// Determines if the two sets are equal.
	Equal(Interface[T]) bool
}
