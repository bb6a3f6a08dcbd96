// Package ptrset implements a small closed-address, double-hashed set of
// raw pointer identities.
//
// It exists for exactly one reason: the 2-link heap validators (leftistheap2,
// pairingheap2) have no back-links, so the only way to catch cross-linking or
// re-entrant nodes during a traversal is to remember every pointer already
// visited and reject a repeat. Set is that memory.
//
// Table sizes are drawn from a precomputed family where the table length is
// coprime to every prime <= 128 (so any probe step in that range visits the
// whole table) and grows roughly by the golden ratio per step. Insert
// rehashes into the next table in the family once load exceeds capacity;
// once the family is exhausted, Insert returns ErrCapacityExceeded.
package ptrset
