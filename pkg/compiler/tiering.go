package compiler

import (
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileTiering normalizes the named intelligent-tiering rules. Each
// access tier carries a minimum day floor matching the control plane's.
func compileTiering(desc *descriptor.Bucket, b *Bundle, sink *violation.List) {
	for _, name := range sortedKeys(desc.TieringRules) {
		rule := desc.TieringRules[name]
		cfg := TieringConfig{
			Name:       name,
			AccessTier: rule.AccessTier,
			Days:       rule.Days,
			Filter:     compileFilter(rule.Filter, sectionTiering, name, sink),
		}

		switch rule.AccessTier {
		case descriptor.AccessTierArchive:
			if rule.Days < descriptor.MinArchiveDays {
				sink.AddError(sectionTiering, name, "days", violation.OutOfRange,
					"%s requires at least %d days, got %d",
					descriptor.AccessTierArchive, descriptor.MinArchiveDays, rule.Days)
			}
		case descriptor.AccessTierDeepArchive:
			if rule.Days < descriptor.MinDeepArchiveDays {
				sink.AddError(sectionTiering, name, "days", violation.OutOfRange,
					"%s requires at least %d days, got %d",
					descriptor.AccessTierDeepArchive, descriptor.MinDeepArchiveDays, rule.Days)
			}
		default:
			sink.AddError(sectionTiering, name, "access_tier", violation.InvalidEnumValue,
				"access_tier must be %s or %s, got %q",
				descriptor.AccessTierArchive, descriptor.AccessTierDeepArchive, rule.AccessTier)
		}

		b.Tiering = append(b.Tiering, cfg)
	}
}
