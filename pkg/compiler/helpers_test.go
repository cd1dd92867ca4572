// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objectplane/bucketc/pkg/compiler"
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// minimalBucket returns the smallest descriptor that compiles cleanly.
func minimalBucket() *descriptor.Bucket {
	return &descriptor.Bucket{Name: "test-bucket"}
}

// violationsWithCode filters the result's violations by code.
func violationsWithCode(res compiler.Result, code violation.Code) []violation.Violation {
	var out []violation.Violation
	for _, v := range res.Violations.Items() {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

// requireRejectedWith asserts the pipeline rejected the descriptor and that
// exactly one violation carries the given code and path.
func requireRejectedWith(t *testing.T, res compiler.Result, code violation.Code, path string) violation.Violation {
	t.Helper()
	require.Equal(t, compiler.PhaseRejected, res.Phase,
		"expected rejection, got %s with violations: %v", res.Phase, res.Violations.Items())
	require.Nil(t, res.Bundle)

	var matches []violation.Violation
	for _, v := range violationsWithCode(res, code) {
		if v.Path() == path {
			matches = append(matches, v)
		}
	}
	require.Len(t, matches, 1,
		"expected exactly one %s at %s, violations: %v", code, path, res.Violations.Items())
	return matches[0]
}

// requireBundled asserts the pipeline produced a bundle with no errors.
func requireBundled(t *testing.T, res compiler.Result) *compiler.Bundle {
	t.Helper()
	require.Equal(t, compiler.PhaseBundled, res.Phase,
		"expected a bundle, violations: %v", res.Violations.Items())
	require.NotNil(t, res.Bundle)
	require.False(t, res.Violations.HasErrors())
	return res.Bundle
}
