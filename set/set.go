package set

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/rdeusser/orderedset/bst"
)

// OrderedSet is a set of distinct items kept in ascending order by a binary
// search tree.
//
// An OrderedSet is not safe for concurrent use. Modifying the set while
// iterating over All is undefined; Sorted returns a snapshot instead.
type OrderedSet[T any] struct {
	tree   *bst.Tree[T]
	logger *zap.Logger
}

// Ensure OrderedSet satisfies set.Interface at compile-time.
var _ Interface[string] = (*OrderedSet[string])(nil)

// New returns a set initialized with the provided items, ordered by the
// natural ordering of T.
func New[T constraints.Ordered](items ...T) *OrderedSet[T] {
	return fromTree(bst.FromSeq(cmp.Compare[T], slices.Values(items)))
}

// NewFunc returns a set initialized with the provided items, ordered by
// compare.
func NewFunc[T any](compare func(a, b T) int, items ...T) *OrderedSet[T] {
	return fromTree(bst.FromSeq(compare, slices.Values(items)))
}

// FromSeq returns a set holding the distinct items of seq. It fails with
// ErrInvalidArgument if seq is nil.
func FromSeq[T constraints.Ordered](seq iter.Seq[T]) (*OrderedSet[T], error) {
	return FromSeqFunc(cmp.Compare[T], seq)
}

// FromSeqFunc is like FromSeq but orders items by compare.
func FromSeqFunc[T any](compare func(a, b T) int, seq iter.Seq[T]) (*OrderedSet[T], error) {
	if seq == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "sequence is nil")
	}

	return fromTree(bst.FromSeq(compare, seq)), nil
}

// Values returns a sequence over items, for passing slices to the algebra
// methods.
func Values[T any](items []T) iter.Seq[T] {
	return slices.Values(items)
}

func fromTree[T any](tree *bst.Tree[T]) *OrderedSet[T] {
	return &OrderedSet[T]{
		tree:   tree,
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used to trace bulk operations at debug level.
func (s *OrderedSet[T]) WithLogger(logger *zap.Logger) *OrderedSet[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	s.logger = logger

	return s
}

// Add an item to the set.
func (s *OrderedSet[T]) Add(item T) bool {
	return s.tree.Insert(item)
}

// Remove an item from the set.
func (s *OrderedSet[T]) Remove(item T) bool {
	return s.tree.Remove(item)
}

// Clear removes all items from the set.
func (s *OrderedSet[T]) Clear() {
	s.tree = bst.New(s.tree.Compare())
}

// Contains determines whether the provided items are in the set.
func (s *OrderedSet[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !s.tree.Contains(item) {
			return false
		}
	}

	return true
}

// Len returns the number of items in the set.
func (s *OrderedSet[T]) Len() int {
	return s.tree.Len()
}

// Min returns the smallest item in the set.
func (s *OrderedSet[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest item in the set.
func (s *OrderedSet[T]) Max() (T, bool) {
	return s.tree.Max()
}

// All returns the items in ascending order, read lazily from the set.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return s.tree.InOrder()
}

// Sorted returns the items in ascending order as they are at the time of the
// call. Later changes to the set are not reflected and the sequence can be
// iterated any number of times.
func (s *OrderedSet[T]) Sorted() iter.Seq[T] {
	return slices.Values(s.ToSlice())
}

// ForEach iterates over items in ascending order and executes the provided
// function against each item. Iteration stops when fn returns true.
func (s *OrderedSet[T]) ForEach(fn func(T) bool) {
	for item := range s.tree.InOrder() {
		if fn(item) {
			break
		}
	}
}

// ToSlice returns the items in ascending order.
func (s *OrderedSet[T]) ToSlice() []T {
	items := make([]T, 0, s.tree.Len())

	for item := range s.tree.InOrder() {
		items = append(items, item)
	}

	return items
}

// String provides a string representation of the set.
func (s *OrderedSet[T]) String() string {
	items := make([]string, 0, s.tree.Len())

	for item := range s.tree.InOrder() {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}

// CopyTo writes the items in ascending order into dst starting at offset.
// Elements of dst outside the written range are left untouched.
func (s *OrderedSet[T]) CopyTo(dst []T, offset int) error {
	if dst == nil {
		return errors.Wrap(ErrInvalidArgument, "destination is nil")
	}

	if offset < 0 {
		return errors.Wrapf(ErrOutOfRange, "offset %d is negative", offset)
	}

	if len(dst)-offset < s.tree.Len() {
		return errors.Wrapf(ErrCapacity, "%d items do not fit in %d slots from offset %d", s.tree.Len(), len(dst), offset)
	}

	i := offset
	for item := range s.tree.InOrder() {
		dst[i] = item
		i++
	}

	return nil
}

// Clone returns an independent copy of the set.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{
		tree:   bst.FromSeq(s.tree.Compare(), s.tree.PreOrder()),
		logger: s.logger,
	}
}

// UnionWith adds every item of other to the set.
func (s *OrderedSet[T]) UnionWith(other iter.Seq[T]) error {
	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "union: other is nil")
	}

	// other may be this set's own iterator.
	items := slices.Collect(other)
	before := s.tree.Len()

	for _, item := range items {
		s.tree.Insert(item)
	}

	s.logger.Debug("union", zap.Int("before", before), zap.Int("after", s.tree.Len()))

	return nil
}

// ExceptWith removes every item of other from the set.
func (s *OrderedSet[T]) ExceptWith(other iter.Seq[T]) error {
	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "except: other is nil")
	}

	items := slices.Collect(other)
	before := s.tree.Len()

	for _, item := range items {
		s.tree.Remove(item)
	}

	s.logger.Debug("except", zap.Int("before", before), zap.Int("after", s.tree.Len()))

	return nil
}

// IntersectWith keeps only the items that are also in other.
func (s *OrderedSet[T]) IntersectWith(other iter.Seq[T]) error {
	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "intersect: other is nil")
	}

	compare := s.tree.Compare()

	// Both snapshots are taken before the set is reset, so other may alias
	// the set.
	others := bst.FromSeq(compare, other)
	original := bst.FromSeq(compare, s.tree.PreOrder())

	s.tree = bst.New(compare)

	for item := range original.PreOrder() {
		if others.Contains(item) {
			s.tree.Insert(item)
		}
	}

	s.logger.Debug("intersect", zap.Int("before", original.Len()), zap.Int("after", s.tree.Len()))

	return nil
}

// SymmetricExceptWith keeps the items that are in either the set or other,
// but not both.
func (s *OrderedSet[T]) SymmetricExceptWith(other iter.Seq[T]) error {
	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "symmetric except: other is nil")
	}

	// Duplicates in other must toggle an item only once.
	others := bst.FromSeq(s.tree.Compare(), other)
	before := s.tree.Len()

	for item := range others.PreOrder() {
		if !s.tree.Remove(item) {
			s.tree.Insert(item)
		}
	}

	s.logger.Debug("symmetric except", zap.Int("before", before), zap.Int("after", s.tree.Len()))

	return nil
}

// IsSubsetOf determines if every item in this set is in other. The empty set
// is a subset of every sequence.
func (s *OrderedSet[T]) IsSubsetOf(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "subset: other is nil")
	}

	others := bst.FromSeq(s.tree.Compare(), other)

	return s.tree.Len() <= others.Len() && s.within(others), nil
}

// IsSupersetOf determines if every item in other is in this set.
func (s *OrderedSet[T]) IsSupersetOf(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "superset: other is nil")
	}

	for item := range other {
		if !s.tree.Contains(item) {
			return false, nil
		}
	}

	return true, nil
}

// IsProperSubsetOf determines if this set is a subset of other and other holds
// more distinct items.
func (s *OrderedSet[T]) IsProperSubsetOf(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "proper subset: other is nil")
	}

	others := bst.FromSeq(s.tree.Compare(), other)

	return s.tree.Len() < others.Len() && s.within(others), nil
}

// IsProperSupersetOf determines if other is a subset of this set and this set
// holds more items than other has distinct items.
func (s *OrderedSet[T]) IsProperSupersetOf(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "proper superset: other is nil")
	}

	others := bst.FromSeq(s.tree.Compare(), other)

	return others.Len() < s.tree.Len() && s.holds(others), nil
}

// Overlaps determines if the set and other share at least one item.
func (s *OrderedSet[T]) Overlaps(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "overlaps: other is nil")
	}

	for item := range other {
		if s.tree.Contains(item) {
			return true, nil
		}
	}

	return false, nil
}

// SetEquals determines if the set and other hold the same distinct items.
// Order and duplicates in other are irrelevant.
func (s *OrderedSet[T]) SetEquals(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrInvalidArgument, "equals: other is nil")
	}

	others := bst.FromSeq(s.tree.Compare(), other)

	return others.Len() == s.tree.Len() && s.holds(others), nil
}

// within reports whether every item of the set is in t.
func (s *OrderedSet[T]) within(t *bst.Tree[T]) bool {
	for item := range s.tree.InOrder() {
		if !t.Contains(item) {
			return false
		}
	}

	return true
}

// holds reports whether every item of t is in the set.
func (s *OrderedSet[T]) holds(t *bst.Tree[T]) bool {
	for item := range t.InOrder() {
		if !s.tree.Contains(item) {
			return false
		}
	}

	return true
}
