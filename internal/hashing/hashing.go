// Package hashing provides Zobrist hashing and duplicate detection for
// chess positions.
package hashing

import (
	"lukechampine.com/frand"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
var zobristSeed = [32]byte{'m', 'o', 'v', 'e', 'g', 'e', 'n'}

const bignum = 1<<63 - 2

var (
	pieceKeys [chess.NumSquares][2][chess.NumKinds]uint64
	movedKeys [chess.NumSquares]uint64
	whiteKey  uint64
)

func init() {
	rng := frand.NewCustom(zobristSeed[:], 1024, 12)
	for sq := range pieceKeys {
		for colour := range pieceKeys[sq] {
			for kind := range pieceKeys[sq][colour] {
				pieceKeys[sq][colour][kind] = rng.Uint64n(bignum) + 1
			}
		}
		movedKeys[sq] = rng.Uint64n(bignum) + 1
	}
	whiteKey = rng.Uint64n(bignum) + 1
}

// Hash returns the Zobrist hash of pos with toMove to play. First-move
// flags are part of the hash since they change what a pawn can generate.
func Hash(pos chess.Position, toMove chess.Colour) uint64 {
	var h uint64
	for sq, p := range pos.Occupied() {
		h ^= pieceKeys[sq][p.Colour][p.Kind]
		if p.HasMoved {
			h ^= movedKeys[sq]
		}
	}
	if toMove == chess.White {
		h ^= whiteKey
	}
	return h
}

// WeakHash is a cheap placement checksum used to confirm a Zobrist match.
func WeakHash(pos chess.Position) uint32 {
	var h uint32
	for sq, p := range pos.Occupied() {
		h += uint32(sq+1) * uint32(int(p.Kind)*2+int(p.Colour)+1)
	}
	return h
}

// Signature identifies one recorded position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast checksum for additional confidence
	WeakHash uint32
	// Index is where the position first appeared in the input
	Index int
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use; callers feed it from a single goroutine in input order.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	maxCapacity    int // 0 means unlimited
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a detector holding at most maxCapacity
// positions (0 for no limit).
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before and, if so, the index it
// was first seen at. New positions are recorded under index unless the
// detector is full.
func (d *DuplicateDetector) CheckAndAdd(pos chess.Position, toMove chess.Colour, index int) (int, bool) {
	sig := Signature{
		Hash:     Hash(pos, toMove),
		WeakHash: WeakHash(pos),
		Index:    index,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.WeakHash == sig.WeakHash {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.size++
	}
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.size = 0
	d.duplicateCount = 0
}
