// Package maxcover implements a branch-and-bound search engine for the
// maximum-coverage ingredient selection problem: given a collection of
// recipes (sets of ingredient identifiers) and an ingredient budget k,
// find a subset of at most k ingredients that fully covers as many
// recipes as possible.
package maxcover

import (
	"fmt"
	"hash/fnv"
	"math/bits"
	"strings"
)

// inlineWords is the number of 64-bit words stored directly inside a
// BitSet struct before storage spills to the heap. 2 words covers the
// [0,128) range without allocation, which comfortably fits the
// motivating cocktail-ingredient universe (~120 ingredients) and any
// recipe's individual ingredient set.
const inlineWords = 2

// BitSet is a value-semantic, fixed-universe-free set of non-negative
// integer identifiers. The zero value is the empty set. BitSet is safe
// to copy; Union, Intersection, and Difference always return new values
// rather than mutating a receiver, while the *Assign variants mutate in
// place.
//
// Equality and the total order defined by Compare are representation
// invariant: trailing all-zero words never affect Equal, Hash, Compare,
// or Key, regardless of how the set was built up.
type BitSet struct {
	small [inlineWords]uint64
	big   []uint64 // non-nil once an element needed more than inlineWords words
}

// Empty returns the empty set.
func Empty() BitSet { return BitSet{} }

// Singleton returns a set containing exactly i.
func Singleton(i int) BitSet {
	var s BitSet
	s.Insert(i)
	return s
}

// FromElements returns a set containing exactly the given elements
// (duplicates tolerated).
func FromElements(elems ...int) BitSet {
	var s BitSet
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

func wordIndex(i int) int { return i / 64 }
func bitMask(i int) uint64 {
	return uint64(1) << uint(i%64)
}

// storage returns the slice currently backing the set, without growing
// it. Callers must not retain or mutate the returned slice.
func (s *BitSet) storage() []uint64 {
	if s.big != nil {
		return s.big
	}
	return s.small[:]
}

// ensureWords returns a mutable backing slice with at least n words,
// spilling to the heap and copying inline contents across the first
// time n exceeds inlineWords.
func (s *BitSet) ensureWords(n int) []uint64 {
	if s.big != nil {
		if len(s.big) < n {
			grown := make([]uint64, n)
			copy(grown, s.big)
			s.big = grown
		}
		return s.big
	}
	if n <= inlineWords {
		return s.small[:]
	}
	grown := make([]uint64, n)
	copy(grown, s.small[:])
	s.big = grown
	return s.big
}

// Insert adds i to the set. Idempotent; grows storage as needed.
func (s *BitSet) Insert(i int) {
	if i < 0 {
		panic(fmt.Sprintf("maxcover: negative element %d", i))
	}
	words := s.ensureWords(wordIndex(i) + 1)
	words[wordIndex(i)] |= bitMask(i)
}

// Contains reports whether i is a member of the set.
func (s BitSet) Contains(i int) bool {
	if i < 0 {
		return false
	}
	st := s.storage()
	w := wordIndex(i)
	if w >= len(st) {
		return false
	}
	return st[w]&bitMask(i) != 0
}

// trimmedLen returns the number of leading words (from index 0) needed
// to represent words, ignoring any trailing all-zero words.
func trimmedLen(words []uint64) int {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return n
}

// Size returns the population count (number of elements) in the set.
func (s BitSet) Size() int {
	st := s.storage()
	n := 0
	for _, w := range st {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no elements.
func (s BitSet) IsEmpty() bool {
	for _, w := range s.storage() {
		if w != 0 {
			return false
		}
	}
	return true
}

// fromWords builds a trimmed BitSet from a raw word slice, placing it
// inline when it fits and on the heap otherwise. words may be reused
// by the caller after this call returns only if it was not already the
// slice chosen for storage; to be safe, callers should pass a slice
// they do not intend to reuse, or a freshly allocated one.
func fromWords(words []uint64) BitSet {
	n := trimmedLen(words)
	var s BitSet
	if n <= inlineWords {
		copy(s.small[:], words[:n])
		return s
	}
	s.big = append([]uint64(nil), words[:n]...)
	return s
}

func maxLen(a, b []uint64) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

func wordAt(words []uint64, i int) uint64 {
	if i >= len(words) {
		return 0
	}
	return words[i]
}

// Union returns a new set containing every element of s or other.
func (s BitSet) Union(other BitSet) BitSet {
	a, b := s.storage(), other.storage()
	n := maxLen(a, b)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = wordAt(a, i) | wordAt(b, i)
	}
	return fromWords(out)
}

// Intersection returns a new set containing every element present in
// both s and other.
func (s BitSet) Intersection(other BitSet) BitSet {
	a, b := s.storage(), other.storage()
	n := maxLen(a, b)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = wordAt(a, i) & wordAt(b, i)
	}
	return fromWords(out)
}

// Difference returns a new set containing every element of s that is
// not present in other (s − other).
func (s BitSet) Difference(other BitSet) BitSet {
	a, b := s.storage(), other.storage()
	n := len(a)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] &^ wordAt(b, i)
	}
	return fromWords(out)
}

// UnionAssign mutates s in place to contain every element of s or other.
func (s *BitSet) UnionAssign(other BitSet) {
	b := other.storage()
	words := s.ensureWords(maxLen(s.storage(), b))
	for i := range words {
		words[i] |= wordAt(b, i)
	}
}

// IntersectionAssign mutates s in place to contain only elements also
// present in other.
func (s *BitSet) IntersectionAssign(other BitSet) {
	b := other.storage()
	words := s.ensureWords(len(s.storage()))
	for i := range words {
		words[i] &= wordAt(b, i)
	}
}

// DifferenceAssign mutates s in place, removing every element also
// present in other.
func (s *BitSet) DifferenceAssign(other BitSet) {
	b := other.storage()
	words := s.ensureWords(len(s.storage()))
	for i := range words {
		words[i] &^= wordAt(b, i)
	}
}

// IsSubset reports whether every element of s is also in other.
func (s BitSet) IsSubset(other BitSet) bool {
	a, b := s.storage(), other.storage()
	for i := 0; i < len(a); i++ {
		if a[i]&^wordAt(b, i) != 0 {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every element of other is also in s.
func (s BitSet) IsSuperset(other BitSet) bool {
	return other.IsSubset(s)
}

// Equal reports whether s and other contain exactly the same elements.
func (s BitSet) Equal(other BitSet) bool {
	a, b := s.storage(), other.storage()
	n := maxLen(a, b)
	for i := 0; i < n; i++ {
		if wordAt(a, i) != wordAt(b, i) {
			return false
		}
	}
	return true
}

// Compare implements a total order over sets: lexicographic comparison
// of their ascending element sequences. Returns -1, 0, or 1 as s is
// less than, equal to, or greater than other. Required because recipes
// are used as map keys (via Key) and iteration/tie-break order must be
// reproducible across runs.
func (s BitSet) Compare(other BitSet) int {
	ai, bi := s.Iterator(), other.Iterator()
	for {
		av, aok := ai.Next()
		bv, bok := bi.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
}

// Hash returns a hash consistent with Equal: equal sets always hash
// equal, independent of inline-vs-heap storage or trailing padding.
func (s BitSet) Hash() uint64 {
	st := s.storage()
	n := trimmedLen(st)
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < n; i++ {
		w := st[i]
		for b := 0; b < 8; b++ {
			buf[b] = byte(w >> (8 * b))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Key returns a canonical, comparable string representation suitable
// for use as a Go map key (BitSet itself is not comparable because its
// heap-spilled representation contains a slice). Two sets are Equal iff
// their Key values are identical.
func (s BitSet) Key() string {
	st := s.storage()
	n := trimmedLen(st)
	var b strings.Builder
	b.Grow(n * 8)
	var buf [8]byte
	for i := 0; i < n; i++ {
		w := st[i]
		for j := 0; j < 8; j++ {
			buf[j] = byte(w >> (8 * j))
		}
		b.Write(buf[:])
	}
	return b.String()
}

// Iterator yields the elements of a BitSet in ascending order and may
// be restarted from the beginning via Reset.
type Iterator struct {
	words []uint64
	word  int    // current word index
	bits  uint64 // remaining bits of the current word, already shifted
}

// Iterator returns a restartable ascending-order iterator over s.
func (s BitSet) Iterator() *Iterator {
	st := s.storage()
	it := &Iterator{words: st[:trimmedLen(st)]}
	it.loadWord()
	return it
}

func (it *Iterator) loadWord() {
	for it.word < len(it.words) && it.words[it.word] == 0 {
		it.word++
	}
	if it.word < len(it.words) {
		it.bits = it.words[it.word]
	} else {
		it.bits = 0
	}
}

// Next returns the next element in ascending order and true, or
// (0, false) once exhausted.
func (it *Iterator) Next() (int, bool) {
	for it.bits == 0 {
		it.word++
		if it.word >= len(it.words) {
			return 0, false
		}
		it.bits = it.words[it.word]
	}
	tz := bits.TrailingZeros64(it.bits)
	it.bits &^= uint64(1) << uint(tz)
	return it.word*64 + tz, true
}

// Reset restarts the iterator from the beginning.
func (it *Iterator) Reset() {
	it.word = 0
	it.loadWord()
}

// Elements returns the elements of s as a freshly allocated, ascending
// slice.
func (s BitSet) Elements() []int {
	out := make([]int, 0, s.Size())
	it := s.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// String renders s as a set literal, e.g. "{0, 2, 5}".
func (s BitSet) String() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprintf("%d", e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
