package substrate

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// ErrShortInput is returned when SCALE data ends before a value is complete.
var ErrShortInput = errors.New("scale: short input")

// Decoder reads SCALE encoded values from a byte slice.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortInput, n, d.pos, d.Remaining())
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// U8 reads a single byte.
func (d *Decoder) U8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32 reads a little-endian uint32.
func (d *Decoder) U32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads a little-endian uint64.
func (d *Decoder) U64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// U128 reads a little-endian 128-bit unsigned integer.
func (d *Decoder) U128() (*big.Int, error) {
	b, err := d.take(16)
	if err != nil {
		return nil, err
	}
	be := make([]byte, 16)
	for i := range b {
		be[15-i] = b[i]
	}
	return new(big.Int).SetBytes(be), nil
}

// Compact reads a compact encoded unsigned integer that fits in 64 bits.
func (d *Decoder) Compact() (uint64, error) {
	first, err := d.U8()
	if err != nil {
		return 0, err
	}
	switch first & 0b11 {
	case 0b00:
		return uint64(first >> 2), nil
	case 0b01:
		next, err := d.U8()
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16([]byte{first, next}) >> 2), nil
	case 0b10:
		rest, err := d.take(3)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32([]byte{first, rest[0], rest[1], rest[2]}) >> 2), nil
	default:
		n := int(first>>2) + 4
		if n > 8 {
			return 0, fmt.Errorf("scale: compact integer of %d bytes exceeds 64 bits", n)
		}
		b, err := d.take(n)
		if err != nil {
			return 0, err
		}
		buf := make([]byte, 8)
		copy(buf, b)
		return binary.LittleEndian.Uint64(buf), nil
	}
}

// Bytes reads a compact length prefixed byte vector.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.Compact()
	if err != nil {
		return nil, err
	}
	if n > uint64(d.Remaining()) {
		return nil, fmt.Errorf("%w: vector of %d bytes, have %d", ErrShortInput, n, d.Remaining())
	}
	return d.take(int(n))
}

// Fixed reads exactly n bytes.
func (d *Decoder) Fixed(n int) ([]byte, error) {
	return d.take(n)
}

// Option reads an Option discriminant, reporting whether a value follows.
func (d *Decoder) Option() (bool, error) {
	flag, err := d.U8()
	if err != nil {
		return false, err
	}
	switch flag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("scale: invalid option flag %d", flag)
	}
}

// EncodeCompact encodes v as a compact integer.
func EncodeCompact(v uint64) []byte {
	switch {
	case v < 1<<6:
		return []byte{byte(v << 2)}
	case v < 1<<14:
		out := make([]byte, 2)
		binary.LittleEndian.PutUint16(out, uint16(v<<2|0b01))
		return out
	case v < 1<<30:
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, uint32(v<<2|0b10))
		return out
	default:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, v)
		n := 8
		for n > 4 && buf[n-1] == 0 {
			n--
		}
		return append([]byte{byte((n-4)<<2 | 0b11)}, buf[:n]...)
	}
}

// EncodeBytes encodes b as a compact length prefixed vector.
func EncodeBytes(b []byte) []byte {
	return append(EncodeCompact(uint64(len(b))), b...)
}

// EncodeU64 encodes v as little-endian bytes.
func EncodeU64(v uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, v)
	return out
}
