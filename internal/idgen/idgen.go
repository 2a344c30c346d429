// Package idgen allocates account identifiers for the user store.
//
// The administrator is pinned to a fixed, well-known id so every
// installation reconciles the same row across runs. Guard ids embed the
// allocation time plus enough randomness to make collisions practically
// impossible, and are never reused.
package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// AdminID is the fixed identifier of the singleton administrator account,
// identical on every installation.
const AdminID = "USER-ADMIN-001"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// guardRandLen base36 characters carry a bit over 46 bits of entropy.
const guardRandLen = 9

// Allocator produces guard account identifiers. The clock and the random
// source are injectable so tests can make allocation deterministic.
type Allocator struct {
	now  func() time.Time
	rand io.Reader
}

// NewAllocator returns an Allocator backed by the wall clock and crypto/rand.
func NewAllocator() *Allocator {
	return NewAllocatorWith(time.Now, rand.Reader)
}

// NewAllocatorWith returns an Allocator using the given clock and random
// source.
func NewAllocatorWith(now func() time.Time, r io.Reader) *Allocator {
	return &Allocator{now: now, rand: r}
}

// GuardID returns a new identifier of the form
// USER-<unix-milliseconds>-<9 uppercase base36 characters>.
func (a *Allocator) GuardID() (string, error) {
	buf := make([]byte, guardRandLen)
	if _, err := io.ReadFull(a.rand, buf); err != nil {
		return "", fmt.Errorf("reading id entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return fmt.Sprintf("USER-%d-%s", a.now().UnixMilli(), buf), nil
}
