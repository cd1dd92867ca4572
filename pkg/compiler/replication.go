// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"sort"
	"strings"

	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileReplication expands the named replication rules into a
// priority-ordered rule set. Priority uniqueness is checked across the full
// map; each duplicated priority yields a single violation naming every
// offending rule.
func compileReplication(desc *descriptor.Bucket, b *Bundle, sink *violation.List) {
	if len(desc.Replication) == 0 {
		return
	}

	names := sortedKeys(desc.Replication)

	byPriority := make(map[int][]string)
	for _, name := range names {
		p := desc.Replication[name].Priority
		byPriority[p] = append(byPriority[p], name)
	}
	priorities := make([]int, 0, len(byPriority))
	for p := range byPriority {
		priorities = append(priorities, p)
	}
	sort.Ints(priorities)
	for _, p := range priorities {
		if dup := byPriority[p]; len(dup) > 1 {
			sink.AddError(sectionReplication, "", "priority", violation.DuplicateKey,
				"priority %d is shared by rules %s", p, strings.Join(dup, ", "))
		}
	}

	for _, name := range names {
		rule := desc.Replication[name]
		cfg := ReplicationConfig{
			Name:              name,
			Priority:          rule.Priority,
			DestinationBucket: rule.DestinationBucket,
			Filter:            compileFilter(rule.Filter, sectionReplication, name, sink),
		}

		if rule.DestinationBucket == "" {
			sink.AddError(sectionReplication, name, "destination_bucket", violation.RequiresField,
				"replication rule requires destination_bucket")
		}
		if rule.Priority < 0 {
			sink.AddError(sectionReplication, name, "priority", violation.OutOfRange,
				"priority cannot be negative, got %d", rule.Priority)
		}

		if sc := rule.DestinationStorageClass; sc != nil {
			if _, err := descriptor.ParseStorageClass(*sc); err != nil {
				sink.AddError(sectionReplication, name, "destination_storage_class", violation.InvalidEnumValue,
					"storage class %q is not recognized", *sc)
			}
			cfg.StorageClass = *sc
		}

		// Key-encrypted objects cannot be replicated without a key on both
		// sides: the source scheme must be key-based and the destination
		// needs its own key reference.
		if enc := rule.EncryptedObjects; enc != nil {
			if !desc.Encryption.KeyBased() {
				sink.AddError(sectionReplication, name, "replicate_encrypted_objects", violation.RequiresField,
					"replicate_encrypted_objects requires a key-based encryption_config.sse_algorithm")
			}
			if enc.ReplicaKMSKeyID == "" {
				sink.AddError(sectionReplication, name, "replicate_encrypted_objects.replica_kms_key_id",
					violation.RequiresField, "replicate_encrypted_objects requires replica_kms_key_id")
			}
			cfg.ReplicaKMSKeyID = enc.ReplicaKMSKeyID
		}

		// Ownership transfer and encrypted-object replication are
		// independent axes; both may be present.
		if owner := rule.OwnershipTransfer; owner != nil {
			if owner.DestinationAccountID == "" {
				sink.AddError(sectionReplication, name,
					"change_object_ownership_to_destination_bucket_owner.destination_account_id",
					violation.RequiresField, "ownership transfer requires destination_account_id")
			}
			cfg.OwnershipAccountID = owner.DestinationAccountID
			cfg.Scope = ScopeCrossAccount
			// The destination bucket must grant the source access for the
			// transfer to take effect; that policy is out of this
			// compiler's sight, so only flag it.
			cfg.RequiresDestinationGrant = true
		}

		if rule.Features != nil {
			cfg.Features = *rule.Features
		}

		b.Replication = append(b.Replication, cfg)
	}

	sort.SliceStable(b.Replication, func(i, j int) bool {
		if b.Replication[i].Priority != b.Replication[j].Priority {
			return b.Replication[i].Priority < b.Replication[j].Priority
		}
		return b.Replication[i].Name < b.Replication[j].Name
	})
}
