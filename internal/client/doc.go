// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

// Package client implements the interactive client application runtime.
//
// It restores the persisted session credential, wires the server adapter and
// the terminal UI together, and owns the process lifecycle of the client.
package client
