package compiler

import (
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileInventory normalizes the named inventory rules. Name uniqueness is
// guaranteed by the rule map; there are no cross-rule invariants.
func compileInventory(desc *descriptor.Bucket, b *Bundle, sink *violation.List) {
	for _, name := range sortedKeys(desc.InventoryRules) {
		rule := desc.InventoryRules[name]
		cfg := InventoryConfig{
			Name:              name,
			DestinationBucket: rule.DestinationBucket,
			OutputFormat:      descriptor.InventoryFormatCSV,
			IncludeNoncurrent: boolOr(rule.IncludeNoncurrentObjects, true),
			Filter:            compileFilter(rule.Filter, sectionInventory, name, sink),
		}

		if rule.DestinationBucket == "" {
			sink.AddError(sectionInventory, name, "destination_bucket", violation.RequiresField,
				"inventory rule requires destination_bucket")
		}

		if f := rule.OutputFormat; f != nil {
			switch *f {
			case descriptor.InventoryFormatCSV, descriptor.InventoryFormatORC, descriptor.InventoryFormatParquet:
				cfg.OutputFormat = *f
			default:
				sink.AddError(sectionInventory, name, "output_format", violation.InvalidEnumValue,
					"output_format must be %s, %s, or %s, got %q",
					descriptor.InventoryFormatCSV, descriptor.InventoryFormatORC,
					descriptor.InventoryFormatParquet, *f)
			}
		}

		b.Inventory = append(b.Inventory, cfg)
	}
}
