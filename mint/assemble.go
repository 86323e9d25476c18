package mint

import (
	"fmt"
	"strings"
)

// wordCursor walks a derived byte sequence two bytes at a time, wrapping
// modulo its length. Byte reuse after exhaustion is intended, not an error:
// the entropy budget of a derivation is fixed at [DerivedLen] bytes no
// matter how many words the assembler spends. A word may span the last and
// first byte when the cursor lands on the final position.
type wordCursor struct {
	bytes []byte
	pos   int
}

// next combines the two bytes at the cursor into an unsigned 16-bit value,
// first byte high-order, and advances the cursor by two.
func (c *wordCursor) next() uint16 {
	n := len(c.bytes)
	hi := c.bytes[c.pos%n]
	lo := c.bytes[(c.pos+1)%n]
	c.pos += 2
	return uint16(hi)<<8 | uint16(lo)
}

// pick returns the cursor-selected index into a pool of size n using the
// documented modulo-biased mapping.
func (c *wordCursor) pick(n int) int {
	return int(c.next()) % n
}

// Assemble builds a password of exactly length characters from a derived
// byte sequence.
//
// Preconditions:
//   - at least one enabled class must survive filtering, else
//     [ErrNoCharacterTypesSelected];
//   - length must fit one mandatory character per surviving pool, else
//     [ErrLengthTooShortForSelectedTypes].
//
// The byte-consumption order is fixed and part of the compatibility
// surface. One word is spent per mandatory character (pools in upper,
// lower, digits, symbols order, placed at positions 0..mandatoryCount-1),
// then one word per remaining position indexing the combined pool, then one
// word per Fisher–Yates step iterating from length-1 down to 1 with
// j = word mod (i+1). Reordering these phases would change every output.
//
// Index selection is value mod poolLength throughout — a documented,
// accepted modulo-biased mapping.
func Assemble(derived []byte, length int, classes Classes, filter PoolFilter) (string, error) {
	if len(derived) == 0 {
		return "", fmt.Errorf("%w: empty derived byte sequence", ErrPrimitiveUnavailable)
	}
	pools := poolsFor(classes, filter)
	if err := checkPools(pools, length); err != nil {
		return "", err
	}
	return assembleFrom(derived, length, pools), nil
}

// checkPools validates the assembler preconditions for the surviving pools.
func checkPools(pools []string, length int) error {
	if len(pools) == 0 {
		return ErrNoCharacterTypesSelected
	}
	if len(pools) > length {
		return fmt.Errorf("%w: %d enabled classes need at least that many characters, got length %d",
			ErrLengthTooShortForSelectedTypes, len(pools), length)
	}
	return nil
}

// assembleFrom runs the mandatory, fill, and shuffle phases over validated
// pools. derived must be non-empty; callers pass [DerivedLen] bytes.
func assembleFrom(derived []byte, length int, pools []string) string {
	combined := strings.Join(pools, "")
	cursor := &wordCursor{bytes: derived}

	buf := make([]byte, length)

	// Phase 1: one mandatory character per enabled pool, in pool order.
	for i, pool := range pools {
		buf[i] = pool[cursor.pick(len(pool))]
	}

	// Phase 2: fill the remaining positions from the combined pool.
	for i := len(pools); i < length; i++ {
		buf[i] = combined[cursor.pick(len(combined))]
	}

	// Phase 3: Fisher–Yates shuffle, i from length-1 down to 1.
	for i := length - 1; i >= 1; i-- {
		j := cursor.pick(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
