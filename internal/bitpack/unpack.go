package bitpack

import "github.com/goparquet/goparquet/internal/perr"

// Reader unpacks a stream of fixed-width, LSB-first, cross-byte-boundary
// values from a byte slice, using a sliding 64-bit register that refills
// from the source as fewer than bitWidth bits remain.
type Reader struct {
	data     []byte
	pos      int
	bitWidth uint
	register uint64
	nbits    uint
}

// NewReader creates a bit-packed value reader over data at the given bit
// width. A bitWidth of 0 is valid and yields an endless stream of zeros.
func NewReader(data []byte, bitWidth uint) *Reader {
	return &Reader{data: data, bitWidth: bitWidth}
}

// Next extracts the next bitWidth-bit value, refilling the register from
// the underlying byte slice as needed.
func (r *Reader) Next() (uint64, error) {
	if r.bitWidth == 0 {
		return 0, nil
	}
	for r.nbits < r.bitWidth {
		if r.pos >= len(r.data) {
			return 0, perr.New(perr.TruncatedInput, "bit-packed reader ran out of input bytes")
		}
		r.register |= uint64(r.data[r.pos]) << r.nbits
		r.pos++
		r.nbits += 8
	}
	mask := uint64(1)<<r.bitWidth - 1
	v := r.register & mask
	r.register >>= r.bitWidth
	r.nbits -= r.bitWidth
	return v, nil
}

// BytesConsumed returns how many whole source bytes have been pulled into
// the register so far, including any unconsumed bits still buffered.
func (r *Reader) BytesConsumed() int { return r.pos }
