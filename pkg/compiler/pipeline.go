// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

// Package compiler turns a raw bucket descriptor into a normalized
// configuration bundle or an ordered violation list. The pipeline is a pure,
// synchronous, single-pass transformation: it never blocks, performs no
// I/O, and is safe to invoke concurrently for independent descriptors.
package compiler

import (
	"sort"

	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// Phase is the pipeline state. Transitions are strictly forward:
// Received → Validating → Defaulting → Compiling → Bundled | Rejected.
type Phase uint8

const (
	PhaseReceived Phase = iota
	PhaseValidating
	PhaseDefaulting
	PhaseCompiling
	PhaseBundled
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhaseReceived:
		return "Received"
	case PhaseValidating:
		return "Validating"
	case PhaseDefaulting:
		return "Defaulting"
	case PhaseCompiling:
		return "Compiling"
	case PhaseBundled:
		return "Bundled"
	case PhaseRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Result carries the terminal phase, the bundle (Bundled only), and every
// violation recorded along the way. Warnings may be present even on a
// Bundled result.
type Result struct {
	Phase      Phase
	Bundle     *Bundle
	Violations *violation.List
}

// Compile runs the full pipeline over one descriptor. The descriptor is
// never mutated; identical inputs always yield identical results.
func Compile(desc *descriptor.Bucket) Result {
	sink := &violation.List{}

	// Validating: every field validator runs; nothing short-circuits.
	validateBucket(desc, sink)
	validateTags(desc.Tags, sectionBucket, "", "tags", sink)
	validateObjectLock(desc, sink)
	validateEncryption(desc, sink)
	validateWebsite(desc, sink)
	validateCORS(desc, sink)

	if sink.HasErrors() {
		sink.Sort()
		observeResult(PhaseRejected, sink)
		return Result{Phase: PhaseRejected, Violations: sink}
	}

	// Defaulting: build the bundle skeleton with declared defaults and
	// implied values resolved. Runs only after presence/absence validation
	// so "was this explicitly set" is still known here.
	b := newBundle(desc)

	// Compiling: per-concern compilers in fixed order.
	compileLifecycle(desc, b, sink)
	compileReplication(desc, b, sink)
	compileNotifications(desc, b, sink)
	compileInventory(desc, b, sink)
	compileTiering(desc, b, sink)

	sink.Sort()
	if sink.HasErrors() {
		observeResult(PhaseRejected, sink)
		return Result{Phase: PhaseRejected, Violations: sink}
	}

	observeResult(PhaseBundled, sink)
	return Result{Phase: PhaseBundled, Bundle: b, Violations: sink}
}

// Build is the error-shaped convenience wrapper around Compile. On
// rejection the returned error is the *violation.List.
func Build(desc *descriptor.Bucket) (*Bundle, error) {
	res := Compile(desc)
	if res.Phase == PhaseRejected {
		return nil, res.Violations
	}
	return res.Bundle, nil
}

// sortedKeys returns the map keys in ascending order. Rule maps are
// unordered; every compiler iterates them through this so output and
// violation ordering stay deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
