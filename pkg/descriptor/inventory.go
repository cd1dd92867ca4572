// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

// InventoryRule schedules inventory reports of matching objects to a
// destination bucket. Rules are keyed by name in Bucket.InventoryRules.
type InventoryRule struct {
	DestinationBucket string  `mapstructure:"destination_bucket" json:"destination_bucket"`
	Filter            *Filter `mapstructure:"filter" json:"filter,omitempty"`

	// OutputFormat defaults to CSV when unset.
	OutputFormat *string `mapstructure:"output_format" json:"output_format,omitempty"`

	// IncludeNoncurrentObjects defaults to true when unset.
	IncludeNoncurrentObjects *bool `mapstructure:"include_noncurrent_objects" json:"include_noncurrent_objects,omitempty"`
}

// Inventory output formats.
const (
	InventoryFormatCSV     = "CSV"
	InventoryFormatORC     = "ORC"
	InventoryFormatParquet = "Parquet"
)

// TieringRule moves matching objects between intelligent-tiering access
// tiers. Rules are keyed by name in Bucket.TieringRules.
type TieringRule struct {
	AccessTier string  `mapstructure:"access_tier" json:"access_tier"`
	Days       int64   `mapstructure:"days" json:"days"`
	Filter     *Filter `mapstructure:"filter" json:"filter,omitempty"`
}

// Intelligent-tiering access tiers and their minimum day floors.
const (
	AccessTierArchive     = "ARCHIVE_ACCESS"
	AccessTierDeepArchive = "DEEP_ARCHIVE_ACCESS"

	MinArchiveDays     = 90
	MinDeepArchiveDays = 180
)
