// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

// Package descriptor holds the caller-supplied bucket configuration model.
// Types here are pure data: no validation, no defaulting, no behavior beyond
// small enum parsers. The compiler package consumes a Bucket and never
// mutates it.
package descriptor

// Bucket is the root descriptor for a single bucket. It is materialized in
// full by the caller (CLI, reconciler, test) before compilation begins.
// Optional sub-configurations are pointers so the compiler can distinguish
// "unset" from "set to the zero value" when applying defaults.
type Bucket struct {
	Name                 string            `mapstructure:"name" json:"name"`
	BucketOwnerAccountID string            `mapstructure:"bucket_owner_account_id" json:"bucket_owner_account_id,omitempty"`
	Tags                 map[string]string `mapstructure:"tags" json:"tags,omitempty"`

	VersioningEnabled    bool    `mapstructure:"versioning_enabled" json:"versioning_enabled"`
	ObjectOwnership      *string `mapstructure:"object_ownership" json:"object_ownership,omitempty"`
	RequesterPays        bool    `mapstructure:"requester_pays" json:"requester_pays"`
	TransferAcceleration bool    `mapstructure:"transfer_acceleration" json:"transfer_acceleration"`

	// Policy is an opaque policy document. It is passed through to the
	// bundle untouched; this compiler does not interpret it.
	Policy string `mapstructure:"policy" json:"policy,omitempty"`

	ObjectLock        *ObjectLock        `mapstructure:"object_lock" json:"object_lock,omitempty"`
	Encryption        *Encryption        `mapstructure:"encryption_config" json:"encryption_config,omitempty"`
	PublicAccessBlock *PublicAccessBlock `mapstructure:"public_access_block" json:"public_access_block,omitempty"`
	Website           *Website           `mapstructure:"website" json:"website,omitempty"`

	CORSRules []CORSRule `mapstructure:"cors_rules" json:"cors_rules,omitempty"`

	// Map-keyed rule collections. Key uniqueness within each collection is
	// guaranteed by the map itself; cross-entry invariants (priority
	// uniqueness, destination arity) are the compiler's job.
	Notifications  map[string][]EventSubscription `mapstructure:"notifications" json:"notifications,omitempty"`
	LifecycleRules map[string]LifecycleRule       `mapstructure:"lifecycle_rules" json:"lifecycle_rules,omitempty"`
	Replication    map[string]ReplicationRule     `mapstructure:"replication_rules" json:"replication_rules,omitempty"`
	InventoryRules map[string]InventoryRule       `mapstructure:"inventory_rules" json:"inventory_rules,omitempty"`
	TieringRules   map[string]TieringRule         `mapstructure:"intelligent_tiering_rules" json:"intelligent_tiering_rules,omitempty"`
}

// ObjectLock holds WORM settings for the bucket.
type ObjectLock struct {
	Enabled          bool              `mapstructure:"enables_object_lock" json:"enables_object_lock"`
	Token            string            `mapstructure:"token" json:"token,omitempty"`
	DefaultRetention *DefaultRetention `mapstructure:"default_retention" json:"default_retention,omitempty"`
}

// DefaultRetention is the bucket-level default retention period. Both
// fields are required when the lock token is absent.
type DefaultRetention struct {
	RetentionMode *string `mapstructure:"retention_mode" json:"retention_mode,omitempty"`
	RetentionDays *int64  `mapstructure:"retention_days" json:"retention_days,omitempty"`
}

// Retention modes.
const (
	RetentionModeGovernance = "GOVERNANCE"
	RetentionModeCompliance = "COMPLIANCE"
)

// Encryption holds default server-side encryption settings.
type Encryption struct {
	SSEAlgorithm     string `mapstructure:"sse_algorithm" json:"sse_algorithm"`
	KMSKeyID         string `mapstructure:"kms_key_id" json:"kms_key_id,omitempty"`
	BucketKeyEnabled *bool  `mapstructure:"bucket_key_enabled" json:"bucket_key_enabled,omitempty"`
}

// SSE algorithms.
const (
	SSEAlgorithmAES256 = "AES256"
	SSEAlgorithmKMS    = "aws:kms"
)

// KeyBased reports whether the scheme encrypts with a managed key. Only
// key-based schemes can replicate encrypted objects (the destination needs
// its own key reference).
func (e *Encryption) KeyBased() bool {
	return e != nil && e.SSEAlgorithm == SSEAlgorithmKMS
}

// PublicAccessBlock blocks public access. Each flag independently defaults
// to false when unset.
type PublicAccessBlock struct {
	BlockPublicAcls       *bool `mapstructure:"block_public_acls" json:"block_public_acls,omitempty"`
	IgnorePublicAcls      *bool `mapstructure:"ignore_public_acls" json:"ignore_public_acls,omitempty"`
	BlockPublicPolicy     *bool `mapstructure:"block_public_policy" json:"block_public_policy,omitempty"`
	RestrictPublicBuckets *bool `mapstructure:"restrict_public_buckets" json:"restrict_public_buckets,omitempty"`
}

// Website holds website hosting settings. The two sub-configurations arrive
// as independent optional fields from the caller and are mutually exclusive;
// the compiler enforces that and folds them into a tagged variant.
type Website struct {
	RedirectRequests *RedirectRequests `mapstructure:"redirect_requests_for_an_object" json:"redirect_requests_for_an_object,omitempty"`
	StaticWebsite    *StaticWebsite    `mapstructure:"static_website" json:"static_website,omitempty"`
}

// RedirectRequests redirects every request to another host.
type RedirectRequests struct {
	HostName string `mapstructure:"host_name" json:"host_name"`
	Protocol string `mapstructure:"protocol" json:"protocol,omitempty"`
}

// StaticWebsite serves the bucket as a static site.
type StaticWebsite struct {
	IndexDocument string `mapstructure:"index_document" json:"index_document"`
	ErrorDocument string `mapstructure:"error_document" json:"error_document,omitempty"`
}

// CORSRule defines a single cross-origin resource sharing rule.
type CORSRule struct {
	ID             string   `mapstructure:"id" json:"id,omitempty"`
	AllowedHeaders []string `mapstructure:"allowed_headers" json:"allowed_headers,omitempty"`
	AllowedMethods []string `mapstructure:"allowed_methods" json:"allowed_methods"`
	AllowedOrigins []string `mapstructure:"allowed_origins" json:"allowed_origins"`
	ExposeHeaders  []string `mapstructure:"expose_headers" json:"expose_headers,omitempty"`
	MaxAgeSeconds  int      `mapstructure:"max_age_seconds" json:"max_age_seconds,omitempty"`
}

// Object ownership modes.
const (
	OwnershipBucketOwnerPreferred = "BucketOwnerPreferred"
	OwnershipObjectWriter         = "ObjectWriter"
	OwnershipBucketOwnerEnforced  = "BucketOwnerEnforced"
)

// Payer values for request payment.
const (
	PayerBucketOwner = "BucketOwner"
	PayerRequester   = "Requester"
)
