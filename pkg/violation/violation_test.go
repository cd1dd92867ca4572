// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package violation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objectplane/bucketc/pkg/violation"
)

func TestViolation_Path(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    violation.Violation
		want string
	}{
		{
			name: "full path",
			v:    violation.Violation{Section: "lifecycle_rules", Rule: "rotate-logs", Field: "expiration.days_after_object_creation"},
			want: "lifecycle_rules.rotate-logs.expiration.days_after_object_creation",
		},
		{
			name: "bucket-level finding has no rule",
			v:    violation.Violation{Section: "bucket", Field: "name"},
			want: "bucket.name",
		},
		{
			name: "section only",
			v:    violation.Violation{Section: "website"},
			want: "website",
		},
		{
			name: "cross-rule finding has no rule or field suffix",
			v:    violation.Violation{Section: "replication_rules", Field: "priority"},
			want: "replication_rules.priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.v.Path())
		})
	}
}

func TestViolation_String(t *testing.T) {
	t.Parallel()

	v := violation.Violation{
		Section: "encryption_config",
		Field:   "kms_key_id",
		Code:    violation.RequiresField,
		Message: "sse_algorithm aws:kms requires kms_key_id",
	}
	require.Equal(t,
		"encryption_config.kms_key_id: REQUIRES_FIELD: sse_algorithm aws:kms requires kms_key_id",
		v.String())
}

func TestList_Sort_IsDeterministic(t *testing.T) {
	t.Parallel()

	build := func(order []int) *violation.List {
		all := []violation.Violation{
			{Section: "bucket", Field: "name", Code: violation.RequiresField},
			{Section: "lifecycle_rules", Rule: "a", Field: "expiration", Code: violation.RequiresField},
			{Section: "lifecycle_rules", Rule: "b", Field: "transitions.days", Code: violation.OutOfRange},
			{Section: "lifecycle_rules", Rule: "b", Field: "transitions.storage_class", Code: violation.InvalidEnumValue},
			{Section: "replication_rules", Field: "priority", Code: violation.DuplicateKey},
		}
		list := &violation.List{}
		for _, i := range order {
			list.Add(all[i])
		}
		return list
	}

	first := build([]int{0, 1, 2, 3, 4})
	second := build([]int{4, 3, 2, 1, 0})
	first.Sort()
	second.Sort()

	require.Equal(t, first.Items(), second.Items())

	got := make([]string, 0, first.Len())
	for _, v := range first.Items() {
		got = append(got, v.Path())
	}
	require.Equal(t, []string{
		"bucket.name",
		"lifecycle_rules.a.expiration",
		"lifecycle_rules.b.transitions.days",
		"lifecycle_rules.b.transitions.storage_class",
		"replication_rules.priority",
	}, got)
}

func TestList_Sort_IsStable(t *testing.T) {
	t.Parallel()

	list := &violation.List{}
	list.AddError("notifications", "", "events", violation.RequiresField, "first")
	list.AddError("notifications", "", "events", violation.InvalidEnumValue, "second")
	list.Sort()

	items := list.Items()
	require.Len(t, items, 2)
	require.Equal(t, "first", items[0].Message)
	require.Equal(t, "second", items[1].Message)
}

func TestList_HasErrors(t *testing.T) {
	t.Parallel()

	list := &violation.List{}
	require.False(t, list.HasErrors())

	list.AddWarning("notifications", "arn:aws:sqs:us-east-1:1:q", "filter_prefix",
		violation.OutOfRange, "unreachable subscription")
	require.False(t, list.HasErrors(), "warnings alone must not reject")
	require.Equal(t, 1, list.Len())

	list.AddError("bucket", "", "name", violation.RequiresField, "bucket name is required")
	require.True(t, list.HasErrors())
}

func TestList_Error_OneViolationPerLine(t *testing.T) {
	t.Parallel()

	list := &violation.List{}
	list.AddError("bucket", "", "name", violation.RequiresField, "bucket name is required")
	list.AddError("website", "", "", violation.RequiresField, "website requires a variant")

	require.Equal(t,
		"bucket.name: REQUIRES_FIELD: bucket name is required\n"+
			"website: REQUIRES_FIELD: website requires a variant",
		list.Error())
}
