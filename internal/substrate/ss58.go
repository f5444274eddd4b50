package substrate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"golang.org/x/crypto/blake2b"
)

// GenericSS58Prefix is the network prefix of the generic substrate address format.
const GenericSS58Prefix uint16 = 42

const (
	ss58ChecksumLength = 2
	ss58MaxPrefix      = 16383
)

var (
	ss58Context = []byte("SS58PRE")

	// ErrInvalidAddress is returned for malformed or mismatching SS58 addresses.
	ErrInvalidAddress = errors.New("invalid ss58 address")
)

// EncodeSS58 renders account as an SS58 address under the network prefix.
func EncodeSS58(account model.AccountID, prefix uint16) (string, error) {
	if prefix > ss58MaxPrefix {
		return "", fmt.Errorf("ss58 prefix %d out of range", prefix)
	}

	var payload []byte
	if prefix < 64 {
		payload = []byte{byte(prefix)}
	} else {
		payload = []byte{
			byte((prefix&0b1111_1100)>>2) | 0b0100_0000,
			byte(prefix>>8) | byte(prefix&0b11)<<6,
		}
	}
	payload = append(payload, account[:]...)
	payload = append(payload, ss58Checksum(payload)...)
	return base58.Encode(payload), nil
}

// DecodeSS58 parses an SS58 address, returning the account and its network prefix.
func DecodeSS58(address string) (model.AccountID, uint16, error) {
	raw := base58.Decode(address)
	if len(raw) == 0 {
		return model.AccountID{}, 0, fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}

	var prefix uint16
	prefixLen := 1
	switch {
	case raw[0] < 64:
		prefix = uint16(raw[0])
	case raw[0] < 128:
		if len(raw) < 2 {
			return model.AccountID{}, 0, fmt.Errorf("%w: truncated prefix", ErrInvalidAddress)
		}
		lower := (raw[0]<<2 | raw[1]>>6) & 0xff
		upper := raw[1] & 0b0011_1111
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLen = 2
	default:
		return model.AccountID{}, 0, fmt.Errorf("%w: reserved prefix byte %d", ErrInvalidAddress, raw[0])
	}

	if len(raw) != prefixLen+model.AccountIDLength+ss58ChecksumLength {
		return model.AccountID{}, 0, fmt.Errorf("%w: unexpected length %d", ErrInvalidAddress, len(raw))
	}
	body := raw[:len(raw)-ss58ChecksumLength]
	if !bytes.Equal(ss58Checksum(body), raw[len(body):]) {
		return model.AccountID{}, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	account, err := model.AccountIDFromBytes(body[prefixLen:])
	if err != nil {
		return model.AccountID{}, 0, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return account, prefix, nil
}

// ParseAccount accepts either an SS58 address or a hex encoded public key.
func ParseAccount(s string) (model.AccountID, error) {
	if len(s) == 2+2*model.AccountIDLength && s[:2] == "0x" {
		account, err := model.AccountIDFromHex(s)
		if err != nil {
			return model.AccountID{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
		}
		return account, nil
	}
	account, _, err := DecodeSS58(s)
	return account, err
}

func ss58Checksum(payload []byte) []byte {
	h, _ := blake2b.New512(nil)
	_, _ = h.Write(ss58Context)
	_, _ = h.Write(payload)
	return h.Sum(nil)[:ss58ChecksumLength]
}
