// SPDX-License-Identifier: Apache-2.0

// Package client implements the roster sync client runtime.
//
// It wires local storage, the HTTP transport, the sync core, and the
// background workers into a single process lifecycle.
package client
