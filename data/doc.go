// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package data provides the sorted point containers behind plot series.
//
// A Container holds one series' points ordered by their sort key and
// supports bulk merging, binary-search range queries, and key/value range
// computation filtered by sign domain. The container is generic over the
// Point capability set, so bar, parametric curve and OHLC series all share
// one implementation without per-point dynamic dispatch.
//
// Containers are not thread-safe; each belongs to the goroutine that owns
// its series. Multiple series may share one container through a shared
// pointer; the container itself has no knowledge of sharing.
package data
