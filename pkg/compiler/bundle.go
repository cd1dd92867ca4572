// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"github.com/google/uuid"

	"github.com/objectplane/bucketc/pkg/descriptor"
)

// Sub-configuration section names, used as the leading segment of violation
// paths. They match the descriptor's field tags so a path like
// "lifecycle_rules.rotate-logs.expiration.days_after_object_creation" points
// back into the caller's input.
const (
	sectionBucket        = "bucket"
	sectionObjectLock    = "object_lock"
	sectionEncryption    = "encryption_config"
	sectionWebsite       = "website"
	sectionCORS          = "cors_rules"
	sectionLifecycle     = "lifecycle_rules"
	sectionReplication   = "replication_rules"
	sectionNotifications = "notifications"
	sectionInventory     = "inventory_rules"
	sectionTiering       = "intelligent_tiering_rules"
)

// bundleNamespace seeds the deterministic bundle ID so that compiling the
// same descriptor always yields the same identifier.
var bundleNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Bundle is the compiler's output: a normalized, fully-defaulted copy of
// every sub-configuration, ready for mechanical translation into
// control-plane calls. A Bundle is created only by a successful compile and
// never mutated afterwards.
type Bundle struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OwnerAccountID string    `json:"owner_account_id,omitempty"`

	Tags []descriptor.Tag `json:"tags,omitempty"`

	VersioningEnabled    bool   `json:"versioning_enabled"`
	ObjectOwnership      string `json:"object_ownership"`
	RequestPayment       string `json:"request_payment"`
	TransferAcceleration bool   `json:"transfer_acceleration"`

	Policy string `json:"policy,omitempty"`

	ObjectLock        *ObjectLockConfig       `json:"object_lock,omitempty"`
	Encryption        *EncryptionConfig       `json:"encryption,omitempty"`
	PublicAccessBlock PublicAccessBlockConfig `json:"public_access_block"`
	Website           *WebsiteConfig          `json:"website,omitempty"`

	CORS []descriptor.CORSRule `json:"cors,omitempty"`

	Lifecycle     []LifecycleConfig   `json:"lifecycle,omitempty"`
	Replication   []ReplicationConfig `json:"replication,omitempty"`
	Notifications NotificationSet     `json:"notifications"`
	Inventory     []InventoryConfig   `json:"inventory,omitempty"`
	Tiering       []TieringConfig     `json:"tiering,omitempty"`
}

// ObjectLockConfig is the normalized object-lock section.
type ObjectLockConfig struct {
	Enabled       bool   `json:"enabled"`
	Token         string `json:"token,omitempty"`
	RetentionMode string `json:"retention_mode,omitempty"`
	RetentionDays int64  `json:"retention_days,omitempty"`
}

// EncryptionConfig is the normalized encryption section.
type EncryptionConfig struct {
	Algorithm        string `json:"algorithm"`
	KMSKeyID         string `json:"kms_key_id,omitempty"`
	BucketKeyEnabled bool   `json:"bucket_key_enabled"`
}

// PublicAccessBlockConfig carries the four access-block flags with defaults
// resolved.
type PublicAccessBlockConfig struct {
	BlockPublicAcls       bool `json:"block_public_acls"`
	IgnorePublicAcls      bool `json:"ignore_public_acls"`
	BlockPublicPolicy     bool `json:"block_public_policy"`
	RestrictPublicBuckets bool `json:"restrict_public_buckets"`
}

// WebsiteMode tags the website variant.
type WebsiteMode uint8

const (
	WebsiteRedirect WebsiteMode = iota + 1
	WebsiteStatic
)

func (m WebsiteMode) String() string {
	switch m {
	case WebsiteRedirect:
		return "redirect"
	case WebsiteStatic:
		return "static"
	default:
		return "unknown"
	}
}

// WebsiteConfig is the website section folded into a tagged variant:
// exactly one of Redirect or Static is populated, matching Mode.
type WebsiteConfig struct {
	Mode     WebsiteMode                  `json:"mode"`
	Redirect *descriptor.RedirectRequests `json:"redirect,omitempty"`
	Static   *descriptor.StaticWebsite    `json:"static,omitempty"`
}

// Filter is a compiled, conjoined object filter. All populated criteria
// must match (AND semantics). Tags are sorted by key.
type Filter struct {
	Prefix          string           `json:"prefix,omitempty"`
	Tags            []descriptor.Tag `json:"tags,omitempty"`
	SizeGreaterThan *int64           `json:"size_greater_than,omitempty"`
	SizeLessThan    *int64           `json:"size_less_than,omitempty"`
}

// LifecycleConfig is one compiled lifecycle rule. Transition lists are
// sorted by day offset ascending.
type LifecycleConfig struct {
	Name   string `json:"name"`
	Filter Filter `json:"filter"`

	Transitions []descriptor.LifecycleTransition `json:"transitions,omitempty"`

	ExpirationDays       int64 `json:"expiration_days,omitempty"`
	CleanUpDeleteMarkers bool  `json:"clean_up_delete_markers,omitempty"`

	NoncurrentTransitions    []descriptor.LifecycleTransition `json:"noncurrent_transitions,omitempty"`
	NoncurrentExpirationDays int64                            `json:"noncurrent_expiration_days,omitempty"`
	NoncurrentRetainCount    int64                            `json:"noncurrent_retain_count,omitempty"`

	AbortMultipartDays int64 `json:"abort_multipart_days,omitempty"`
}

// AccountScope classifies a replication rule by whether replica ownership
// crosses an account boundary.
type AccountScope uint8

const (
	ScopeSameAccount AccountScope = iota
	ScopeCrossAccount
)

func (s AccountScope) String() string {
	if s == ScopeCrossAccount {
		return "cross-account"
	}
	return "same-account"
}

// ReplicationConfig is one compiled replication rule. The slice in the
// bundle is ordered by priority ascending.
type ReplicationConfig struct {
	Name              string `json:"name"`
	Priority          int    `json:"priority"`
	DestinationBucket string `json:"destination_bucket"`
	StorageClass      string `json:"storage_class,omitempty"`
	Filter            Filter `json:"filter"`

	Scope AccountScope `json:"scope"`

	// RequiresDestinationGrant flags cross-account rules whose destination
	// bucket must also grant access. This compiler cannot see the
	// destination's policy, so the flag is informational for the caller.
	RequiresDestinationGrant bool `json:"requires_destination_grant"`

	ReplicaKMSKeyID    string `json:"replica_kms_key_id,omitempty"`
	OwnershipAccountID string `json:"ownership_account_id,omitempty"`

	Features descriptor.ReplicationFeatures `json:"features"`
}

// NotificationSet partitions compiled destinations by kind. At most one
// queue and one topic destination exist; function destinations are
// unbounded and sorted by address.
type NotificationSet struct {
	Queue     *DestinationConfig  `json:"queue,omitempty"`
	Topic     *DestinationConfig  `json:"topic,omitempty"`
	Functions []DestinationConfig `json:"functions,omitempty"`
}

// DestinationConfig is one compiled notification destination. Subscription
// order is preserved from the input; it matters for display and audit, not
// for delivery.
type DestinationConfig struct {
	Address       string                     `json:"address"`
	Kind          descriptor.DestinationKind `json:"-"`
	Subscriptions []SubscriptionConfig       `json:"subscriptions"`
}

// SubscriptionConfig is one compiled event subscription.
type SubscriptionConfig struct {
	Events       []string `json:"events"`
	FilterPrefix string   `json:"filter_prefix,omitempty"`
	FilterSuffix string   `json:"filter_suffix,omitempty"`
}

// InventoryConfig is one compiled inventory rule with defaults resolved.
type InventoryConfig struct {
	Name              string `json:"name"`
	DestinationBucket string `json:"destination_bucket"`
	OutputFormat      string `json:"output_format"`
	IncludeNoncurrent bool   `json:"include_noncurrent"`
	Filter            Filter `json:"filter"`
}

// TieringConfig is one compiled intelligent-tiering rule.
type TieringConfig struct {
	Name       string `json:"name"`
	AccessTier string `json:"access_tier"`
	Days       int64  `json:"days"`
	Filter     Filter `json:"filter"`
}
