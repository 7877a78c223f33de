package circlefft

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/cwbudde/circle-fft/internal/circle"
	"github.com/cwbudde/circle-fft/internal/fft"
)

// Twiddle construction costs a pass of group arithmetic and a batch
// inversion per size, so plans of the same size share tables through a
// process-wide cache. Tables are read-only after construction.

type twiddleSet struct {
	forward [][]uint32
	inverse [][]uint32
}

var (
	twiddleMu    sync.RWMutex
	twiddleCache = map[int]*twiddleSet{}
)

func buildTwiddles(logN int) *twiddleSet {
	coset := circle.CanonicHalfCoset(logN)

	return &twiddleSet{
		forward: fft.TwiddleDbls(coset),
		inverse: fft.InverseTwiddleDbls(coset),
	}
}

func twiddlesFor(logN int, useCache bool) (forward, inverse [][]uint32) {
	if !useCache {
		set := buildTwiddles(logN)
		return set.forward, set.inverse
	}

	twiddleMu.RLock()
	set, ok := twiddleCache[logN]
	twiddleMu.RUnlock()

	if !ok {
		twiddleMu.Lock()
		if set, ok = twiddleCache[logN]; !ok {
			set = buildTwiddles(logN)
			twiddleCache[logN] = set
		}
		twiddleMu.Unlock()
	}

	return set.forward, set.inverse
}

// ClearTwiddleCache removes all cached twiddle tables. Existing plans
// keep their references and stay valid.
func ClearTwiddleCache() {
	twiddleMu.Lock()
	defer twiddleMu.Unlock()

	twiddleCache = map[int]*twiddleSet{}
}

// TwiddleCacheLen returns the number of sizes with cached tables.
func TwiddleCacheLen() int {
	twiddleMu.RLock()
	defer twiddleMu.RUnlock()

	return len(twiddleCache)
}

// Fingerprint returns a hex-encoded 128-bit BLAKE2b digest of the
// plan's forward twiddle table. Two plans agree on their domain if and
// only if their fingerprints match, which makes the digest a cheap
// consistency check for tables shared across processes.
func (p *Plan) Fingerprint() string {
	h, err := blake2b.New(16, nil)
	if err != nil {
		panic(err) // unkeyed blake2b cannot fail
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(p.logN))
	h.Write(buf[:])

	for _, layer := range p.forward {
		for _, tw := range layer {
			binary.LittleEndian.PutUint32(buf[:], tw)
			h.Write(buf[:])
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// CheckFingerprint compares the plan's twiddle fingerprint against an
// expected value, e.g. one recorded by the process that produced a
// shared evaluation set. It returns ErrTwiddleMismatch on disagreement.
func (p *Plan) CheckFingerprint(want string) error {
	if p.Fingerprint() != want {
		return ErrTwiddleMismatch
	}

	return nil
}
