// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires local storage, the remote store adapter, the background monitors
// and the seed sync engine, and runs the terminal UI on top of them as a
// single process lifecycle.
package client
