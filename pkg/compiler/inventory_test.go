// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/require"

	"github.com/objectplane/bucketc/pkg/compiler"
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

func TestCompileInventory(t *testing.T) {
	t.Parallel()

	t.Run("defaults resolve", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.InventoryRules = map[string]descriptor.InventoryRule{
			"weekly": {DestinationBucket: "reports"},
		}
		b := requireBundled(t, compiler.Compile(desc))
		require.Len(t, b.Inventory, 1)
		require.Equal(t, descriptor.InventoryFormatCSV, b.Inventory[0].OutputFormat)
		require.True(t, b.Inventory[0].IncludeNoncurrent)
	})

	t.Run("explicit settings are preserved", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.InventoryRules = map[string]descriptor.InventoryRule{
			"weekly": {
				DestinationBucket:        "reports",
				OutputFormat:             aws.String(descriptor.InventoryFormatParquet),
				IncludeNoncurrentObjects: aws.Bool(false),
			},
		}
		b := requireBundled(t, compiler.Compile(desc))
		require.Equal(t, descriptor.InventoryFormatParquet, b.Inventory[0].OutputFormat)
		require.False(t, b.Inventory[0].IncludeNoncurrent)
	})

	t.Run("destination is required", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.InventoryRules = map[string]descriptor.InventoryRule{"weekly": {}}
		res := compiler.Compile(desc)
		requireRejectedWith(t, res, violation.RequiresField, "inventory_rules.weekly.destination_bucket")
	})

	t.Run("unknown output format", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.InventoryRules = map[string]descriptor.InventoryRule{
			"weekly": {DestinationBucket: "reports", OutputFormat: aws.String("XLSX")},
		}
		res := compiler.Compile(desc)
		requireRejectedWith(t, res, violation.InvalidEnumValue, "inventory_rules.weekly.output_format")
	})

	t.Run("output sorted by rule name", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.InventoryRules = map[string]descriptor.InventoryRule{
			"b": {DestinationBucket: "reports"},
			"a": {DestinationBucket: "reports"},
		}
		b := requireBundled(t, compiler.Compile(desc))
		require.Equal(t, "a", b.Inventory[0].Name)
		require.Equal(t, "b", b.Inventory[1].Name)
	})
}

func TestCompileTiering(t *testing.T) {
	t.Parallel()

	t.Run("archive floor", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.TieringRules = map[string]descriptor.TieringRule{
			"cold": {AccessTier: descriptor.AccessTierArchive, Days: 89},
		}
		res := compiler.Compile(desc)
		requireRejectedWith(t, res, violation.OutOfRange, "intelligent_tiering_rules.cold.days")
	})

	t.Run("deep archive floor", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.TieringRules = map[string]descriptor.TieringRule{
			"frozen": {AccessTier: descriptor.AccessTierDeepArchive, Days: 179},
		}
		res := compiler.Compile(desc)
		requireRejectedWith(t, res, violation.OutOfRange, "intelligent_tiering_rules.frozen.days")
	})

	t.Run("days at the floor compile", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.TieringRules = map[string]descriptor.TieringRule{
			"cold":   {AccessTier: descriptor.AccessTierArchive, Days: descriptor.MinArchiveDays},
			"frozen": {AccessTier: descriptor.AccessTierDeepArchive, Days: descriptor.MinDeepArchiveDays},
		}
		b := requireBundled(t, compiler.Compile(desc))
		require.Len(t, b.Tiering, 2)
		require.Equal(t, "cold", b.Tiering[0].Name)
		require.Equal(t, int64(90), b.Tiering[0].Days)
	})

	t.Run("unknown tier", func(t *testing.T) {
		t.Parallel()
		desc := minimalBucket()
		desc.TieringRules = map[string]descriptor.TieringRule{
			"warm": {AccessTier: "LUKEWARM_ACCESS", Days: 90},
		}
		res := compiler.Compile(desc)
		requireRejectedWith(t, res, violation.InvalidEnumValue, "intelligent_tiering_rules.warm.access_tier")
	})
}
