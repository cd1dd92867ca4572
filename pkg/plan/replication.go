// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/objectplane/bucketc/pkg/compiler"
)

// replicationTimeMinutes is the control plane's only supported replication
// time target.
const replicationTimeMinutes = 15

// ReplicationInput builds the replication request, or nil when the bundle
// has no replication rules. Rules are emitted in priority order.
func ReplicationInput(b *compiler.Bundle, role string) *s3.PutBucketReplicationInput {
	if len(b.Replication) == 0 {
		return nil
	}

	rules := make([]types.ReplicationRule, 0, len(b.Replication))
	for _, cfg := range b.Replication {
		rule := types.ReplicationRule{
			ID:       aws.String(cfg.Name),
			Priority: aws.Int32(int32(cfg.Priority)),
			Status:   types.ReplicationRuleStatusEnabled,
			Filter:   replicationFilter(cfg.Filter),
			DeleteMarkerReplication: &types.DeleteMarkerReplication{
				Status: deleteMarkerStatus(cfg.Features.DeleteMarkerReplication),
			},
		}

		dest := &types.Destination{Bucket: aws.String(cfg.DestinationBucket)}
		if cfg.StorageClass != "" {
			dest.StorageClass = types.StorageClass(cfg.StorageClass)
		}
		if cfg.Scope == compiler.ScopeCrossAccount {
			dest.Account = aws.String(cfg.OwnershipAccountID)
			dest.AccessControlTranslation = &types.AccessControlTranslation{
				Owner: types.OwnerOverrideDestination,
			}
		}
		if cfg.ReplicaKMSKeyID != "" {
			dest.EncryptionConfiguration = &types.EncryptionConfiguration{
				ReplicaKmsKeyID: aws.String(cfg.ReplicaKMSKeyID),
			}
			rule.SourceSelectionCriteria = &types.SourceSelectionCriteria{
				SseKmsEncryptedObjects: &types.SseKmsEncryptedObjects{
					Status: types.SseKmsEncryptedObjectsStatusEnabled,
				},
			}
		}
		if cfg.Features.Metrics {
			dest.Metrics = &types.Metrics{
				Status: types.MetricsStatusEnabled,
				EventThreshold: &types.ReplicationTimeValue{
					Minutes: aws.Int32(replicationTimeMinutes),
				},
			}
		}
		if cfg.Features.TimeControl {
			dest.ReplicationTime = &types.ReplicationTime{
				Status: types.ReplicationTimeStatusEnabled,
				Time: &types.ReplicationTimeValue{
					Minutes: aws.Int32(replicationTimeMinutes),
				},
			}
		}
		if cfg.Features.ModificationSync {
			criteria := rule.SourceSelectionCriteria
			if criteria == nil {
				criteria = &types.SourceSelectionCriteria{}
				rule.SourceSelectionCriteria = criteria
			}
			criteria.ReplicaModifications = &types.ReplicaModifications{
				Status: types.ReplicaModificationsStatusEnabled,
			}
		}

		rule.Destination = dest
		rules = append(rules, rule)
	}

	in := &s3.PutBucketReplicationInput{
		Bucket: aws.String(b.Name),
		ReplicationConfiguration: &types.ReplicationConfiguration{
			Rules: rules,
		},
	}
	if role != "" {
		in.ReplicationConfiguration.Role = aws.String(role)
	}
	return in
}

func deleteMarkerStatus(enabled bool) types.DeleteMarkerReplicationStatus {
	if enabled {
		return types.DeleteMarkerReplicationStatusEnabled
	}
	return types.DeleteMarkerReplicationStatusDisabled
}

func replicationFilter(f compiler.Filter) *types.ReplicationRuleFilter {
	switch {
	case len(f.Tags) == 0:
		return &types.ReplicationRuleFilter{Prefix: aws.String(f.Prefix)}
	case f.Prefix == "" && len(f.Tags) == 1:
		return &types.ReplicationRuleFilter{Tag: &types.Tag{
			Key:   aws.String(f.Tags[0].Key),
			Value: aws.String(f.Tags[0].Value),
		}}
	default:
		return &types.ReplicationRuleFilter{And: &types.ReplicationRuleAndOperator{
			Prefix: aws.String(f.Prefix),
			Tags:   ruleFilterTags(f),
		}}
	}
}
