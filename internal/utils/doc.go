// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client:
// record-name derivation, session token parsing, request identifiers and the
// HTTP client wrapper.
package utils
