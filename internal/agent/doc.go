// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the sync agent runtime.
//
// It wires local storage, the remote transport, the sync engine, and the
// background drain job into a single process lifecycle.
package agent
