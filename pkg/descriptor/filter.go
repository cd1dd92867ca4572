package descriptor

// Filter narrows which objects a rule applies to. When more than one
// criterion is present the compiled filter conjoins them (AND semantics).
type Filter struct {
	Prefix                *string           `mapstructure:"prefix" json:"prefix,omitempty"`
	Tags                  map[string]string `mapstructure:"tags" json:"tags,omitempty"`
	ObjectSizeGreaterThan *int64            `mapstructure:"object_size_greater_than" json:"object_size_greater_than,omitempty"`
	ObjectSizeLessThan    *int64            `mapstructure:"object_size_less_than" json:"object_size_less_than,omitempty"`
}

// Tag is a key-value pair attached to a bucket or matched by a filter.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tag limits, matching the control plane's own.
const (
	MaxTagKeyLength   = 128
	MaxTagValueLength = 256
)
