package set

// Union returns a new set with all items which are in either set.
func (s *OrderedSet[T]) Union(other Interface[T]) *OrderedSet[T] {
	result := s.Clone()
	_ = result.UnionWith(other.All())

	return result
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *OrderedSet[T]) Intersect(other Interface[T]) *OrderedSet[T] {
	result := s.Clone()
	_ = result.IntersectWith(other.All())

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *OrderedSet[T]) Difference(other Interface[T]) *OrderedSet[T] {
	result := s.Clone()
	_ = result.ExceptWith(other.All())

	return result
}

// SymmetricDifference returns a new set with all items which are in either
// set, but not both.
func (s *OrderedSet[T]) SymmetricDifference(other Interface[T]) *OrderedSet[T] {
	result := s.Clone()
	_ = result.SymmetricExceptWith(other.All())

	return result
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *OrderedSet[T]) IsSuperSet(other Interface[T]) bool {
	ok, _ := s.IsSupersetOf(other.All())
	return ok
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *OrderedSet[T]) IsSubSet(other Interface[T]) bool {
	ok, _ := s.IsSubsetOf(other.All())
	return ok
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *OrderedSet[T]) Equal(other Interface[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	ok, _ := s.SetEquals(other.All())
	return ok
}
