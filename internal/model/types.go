// Package model defines domain models for the worker node reward dashboard.
package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Namespace identifies a worker node solution, e.g. "smartflow.y24q2".
type Namespace string

// DefaultNamespace is the solution namespace queried when none is configured.
const DefaultNamespace Namespace = "smartflow.y24q2"

// AccountIDLength is the size of a 32-byte substrate account id.
const AccountIDLength = 32

// AccountID is a raw substrate account public key.
type AccountID [AccountIDLength]byte

// AccountIDFromBytes copies b into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, fmt.Errorf("account id must be %d bytes, got %d", AccountIDLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// AccountIDFromHex parses a 0x-prefixed or bare hex account id.
func AccountIDFromHex(s string) (AccountID, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return AccountID{}, fmt.Errorf("decode account hex: %w", err)
	}
	return AccountIDFromBytes(raw)
}

// Hex returns the 0x-prefixed hex form.
func (a AccountID) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ChainInfo describes the node the dashboard is connected to.
type ChainInfo struct {
	Chain       string `json:"chain"`
	NodeName    string `json:"nodeName"`
	NodeVersion string `json:"nodeVersion"`
}
