package ptrset

import (
	"errors"
	"unsafe"
)

// ErrCapacityExceeded is returned when rehashing would require a table size
// beyond the precomputed family.
var ErrCapacityExceeded = errors.New("ptrset: capacity exceeded")

// tableInfo describes one step of the table-size family: cap is the load
// threshold that triggers a rehash into the next step, tlen is the physical
// table length, and bias debiases the multiplicative hash mapping.
type tableInfo struct {
	cap  uint32
	tlen uint32
	bias uint32
}

// tables is the precomputed size family. tlen is chosen coprime to every
// prime <= 128 so that any probe step derived from a 7-bit mask visits the
// entire table before repeating, and grows by roughly the golden ratio per
// step so the family covers realistic node counts in a handful of steps.
var tables = []tableInfo{
	{132, 199, 46},
	{211, 317, 232},
	{347, 521, 117},
	{559, 839, 446},
	{911, 1367, 932},
	{1471, 2207, 1841},
	{2380, 3571, 611},
	{3852, 5779, 2938},
	{6232, 9349, 8649},
	{10087, 15131, 2684},
	{16315, 24473, 4742},
	{26400, 39601, 1240},
	{42719, 64079, 8242},
	{69120, 103681, 85552},
	{111839, 167759, 1378},
	{180960, 271441, 227794},
	{292804, 439207, 401250},
	{473760, 710641, 563733},
	{766568, 1149853, 266341},
	// beyond this point, table sizes are more academic than practical:
	{1240327, 1860491, 954068},
	{2006899, 3010349, 2209622},
	{3247231, 4870847, 3751089},
	{5254131, 7881197, 7596128},
	{8501360, 12752041, 10281520},
	{13755491, 20633237, 3254000},
	{22256852, 33385279, 21651584},
	{36012347, 54018521, 27504137},
	{58269200, 87403801, 12181047},
	{94281552, 141422329, 52297426},
	{152550748, 228826123, 176097082},
	{246832300, 370248451, 222234335},
}

// Set is a fixed-family closed-address hash set of unsafe.Pointer identities.
// The zero value is not usable; construct with New.
type Set struct {
	table []unsafe.Pointer
	step  int // index into tables for the current table
	used  int
}

// New returns a Set sized to hold at least n entries before its first
// rehash. It panics if n exceeds the largest table in the family — callers
// size validators from a known upper bound on node count, so this indicates
// a caller programming error rather than a runtime condition to recover from.
func New(n int) *Set {
	step := 0
	for step < len(tables) && uint32(n) > tables[step].cap {
		step++
	}
	if step == len(tables) {
		panic("ptrset: requested capacity exceeds table family")
	}
	return &Set{
		table: make([]unsafe.Pointer, tables[step].tlen),
		step:  step,
	}
}

// limit returns the load threshold that would trigger the next rehash.
func (s *Set) limit() int { return int(tables[s.step].cap) }

// Used returns the number of entries currently stored.
func (s *Set) Used() int { return s.used }

// hashPtr mixes a pointer's bit pattern with the Jenkins "one-at-a-time"
// finalizer and folds the result to 32 bits.
func hashPtr(p unsafe.Pointer) uint32 {
	key := uint64(uintptr(p))
	key += key << 12
	key ^= key >> 22
	key += key << 4
	key ^= key >> 9
	key += key << 10
	key ^= key >> 2
	key += key << 7
	key ^= key >> 12
	key ^= key >> 32
	return uint32(key)
}

// probe returns the initial slot and step size for p in the current table.
func (s *Set) probe(p unsafe.Pointer) (slot, step uint32) {
	h := hashPtr(p)
	step = (h & 127) + 1
	slot = uint32((uint64(h)*uint64(tables[s.step].tlen) + uint64(tables[s.step].bias)) >> 32)
	return slot, step
}

func (s *Set) find(p unsafe.Pointer) uint32 {
	slot, step := s.probe(p)
	n := uint32(len(s.table))
	for s.table[slot] != nil && s.table[slot] != p {
		slot += step
		if slot >= n {
			slot -= n
		}
	}
	return slot
}

// Insert adds p to the set. It returns true iff p was not already present.
// A rehash into the next table in the family is triggered automatically
// once the load exceeds the current table's limit; ErrCapacityExceeded
// surfaces if the family is exhausted.
func (s *Set) Insert(p unsafe.Pointer) (bool, error) {
	slot := s.find(p)
	if s.table[slot] != nil {
		return false, nil
	}
	s.table[slot] = p
	s.used++
	if s.used > s.limit() {
		if err := s.rehash(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Lookup reports whether p is present in the set without inserting it.
func (s *Set) Lookup(p unsafe.Pointer) bool {
	return s.table[s.find(p)] != nil
}

func (s *Set) rehash() error {
	if s.step+1 >= len(tables) {
		return ErrCapacityExceeded
	}
	old := s.table
	s.step++
	s.table = make([]unsafe.Pointer, tables[s.step].tlen)
	s.used = 0
	for _, p := range old {
		if p != nil {
			slot := s.find(p)
			s.table[slot] = p
			s.used++
		}
	}
	return nil
}
