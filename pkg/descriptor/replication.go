// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

// ReplicationRule describes replication of matching objects to another
// bucket. Rules are keyed by name in Bucket.Replication; Priority must be
// unique across all rules of one descriptor.
type ReplicationRule struct {
	DestinationBucket string  `mapstructure:"destination_bucket" json:"destination_bucket"`
	Priority          int     `mapstructure:"priority" json:"priority"`
	Filter            *Filter `mapstructure:"filter" json:"filter,omitempty"`

	// DestinationStorageClass overrides the storage class replicas are
	// written with.
	DestinationStorageClass *string `mapstructure:"destination_storage_class" json:"destination_storage_class,omitempty"`

	// EncryptedObjects opts key-encrypted objects into replication. Valid
	// only when the descriptor-level encryption scheme is key-based.
	EncryptedObjects *EncryptedObjectReplication `mapstructure:"replicate_encrypted_objects" json:"replicate_encrypted_objects,omitempty"`

	// OwnershipTransfer hands replicas to the destination bucket owner.
	OwnershipTransfer *OwnershipTransfer `mapstructure:"change_object_ownership_to_destination_bucket_owner" json:"change_object_ownership_to_destination_bucket_owner,omitempty"`

	Features *ReplicationFeatures `mapstructure:"features" json:"features,omitempty"`
}

// EncryptedObjectReplication configures replication of encrypted objects.
// The destination side needs its own key reference.
type EncryptedObjectReplication struct {
	ReplicaKMSKeyID string `mapstructure:"replica_kms_key_id" json:"replica_kms_key_id"`
}

// OwnershipTransfer reassigns replica ownership to the destination account.
type OwnershipTransfer struct {
	DestinationAccountID string `mapstructure:"destination_account_id" json:"destination_account_id"`
}

// ReplicationFeatures bundles the optional feature flags. All default to
// false when the bundle is unset.
type ReplicationFeatures struct {
	Metrics                 bool `mapstructure:"metrics" json:"metrics"`
	TimeControl             bool `mapstructure:"time_control" json:"time_control"`
	ModificationSync        bool `mapstructure:"modification_sync" json:"modification_sync"`
	DeleteMarkerReplication bool `mapstructure:"delete_marker_replication" json:"delete_marker_replication"`
}
