package compiler

import (
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileFilter validates and conjoins one rule filter. Multiple criteria
// compile to AND semantics: the resulting Filter matches only objects
// satisfying every populated field.
func compileFilter(f *descriptor.Filter, section, rule string, sink *violation.List) Filter {
	if f == nil {
		return Filter{}
	}

	validateTags(f.Tags, section, rule, "filter.tags", sink)

	if f.ObjectSizeGreaterThan != nil && *f.ObjectSizeGreaterThan < 0 {
		sink.AddError(section, rule, "filter.object_size_greater_than", violation.OutOfRange,
			"object_size_greater_than cannot be negative, got %d", *f.ObjectSizeGreaterThan)
	}
	if f.ObjectSizeLessThan != nil && *f.ObjectSizeLessThan < 0 {
		sink.AddError(section, rule, "filter.object_size_less_than", violation.OutOfRange,
			"object_size_less_than cannot be negative, got %d", *f.ObjectSizeLessThan)
	}
	if f.ObjectSizeGreaterThan != nil && f.ObjectSizeLessThan != nil &&
		*f.ObjectSizeGreaterThan >= *f.ObjectSizeLessThan {
		sink.AddError(section, rule, "filter.object_size_greater_than", violation.OutOfRange,
			"object_size_greater_than (%d) must be less than object_size_less_than (%d)",
			*f.ObjectSizeGreaterThan, *f.ObjectSizeLessThan)
	}

	out := Filter{
		Tags:            sortedTags(f.Tags),
		SizeGreaterThan: f.ObjectSizeGreaterThan,
		SizeLessThan:    f.ObjectSizeLessThan,
	}
	if f.Prefix != nil {
		out.Prefix = *f.Prefix
	}
	return out
}
