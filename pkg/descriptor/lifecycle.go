package descriptor

// LifecycleRule describes lifecycle actions for objects matching its filter.
// Rules are keyed by name in Bucket.LifecycleRules; the key is carried
// through to the compiled output.
type LifecycleRule struct {
	Filter *Filter `mapstructure:"filter" json:"filter,omitempty"`

	// Transitions for the current object version, in any order; the
	// compiler sorts them by day offset and rejects duplicates.
	Transitions []LifecycleTransition `mapstructure:"transitions" json:"transitions,omitempty"`

	Expiration *LifecycleExpiration `mapstructure:"expiration" json:"expiration,omitempty"`

	NoncurrentTransitions []LifecycleTransition          `mapstructure:"noncurrent_version_transitions" json:"noncurrent_version_transitions,omitempty"`
	NoncurrentExpiration  *LifecycleNoncurrentExpiration `mapstructure:"noncurrent_version_expiration" json:"noncurrent_version_expiration,omitempty"`

	// AbortIncompleteMultipartUploadDays cleans up stalled multipart
	// uploads this many days after initiation.
	AbortIncompleteMultipartUploadDays *int64 `mapstructure:"abort_incomplete_multipart_upload_days" json:"abort_incomplete_multipart_upload_days,omitempty"`
}

// LifecycleTransition moves objects to another storage class after a number
// of days.
type LifecycleTransition struct {
	Days         int64  `mapstructure:"days" json:"days"`
	StorageClass string `mapstructure:"storage_class" json:"storage_class"`
}

// LifecycleExpiration deletes current object versions. A dated expiration
// and delete-marker cleanup are exclusive within one rule.
type LifecycleExpiration struct {
	DaysAfterObjectCreation *int64 `mapstructure:"days_after_object_creation" json:"days_after_object_creation,omitempty"`
	CleanUpDeleteMarkers    bool   `mapstructure:"clean_up_expired_object_delete_markers" json:"clean_up_expired_object_delete_markers"`
}

// LifecycleNoncurrentExpiration deletes noncurrent object versions.
type LifecycleNoncurrentExpiration struct {
	Days        *int64 `mapstructure:"days_after_objects_become_noncurrent" json:"days_after_objects_become_noncurrent,omitempty"`
	RetainCount *int64 `mapstructure:"newer_noncurrent_versions_to_retain" json:"newer_noncurrent_versions_to_retain,omitempty"`
}
