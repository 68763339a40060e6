// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// DeriveRecordName returns the remote record name of a wallet:
// hex(BLAKE2b-256 keyed with cloudKey over nodeID). The name is stable for
// a given wallet and reveals nothing about the node id without the key.
//
// BLAKE2b accepts keys of at most 64 bytes; longer keys are hashed first.
func DeriveRecordName(cloudKey, nodeID string) (string, error) {
	key := []byte(cloudKey)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}

	h, err := blake2b.New256(key)
	if err != nil {
		return "", err
	}
	h.Write([]byte(nodeID))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Fingerprint returns an unkeyed BLAKE2b-256 digest of s. It is used to
// detect session changes without keeping the token itself around.
func Fingerprint(s string) string {
	if s == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
