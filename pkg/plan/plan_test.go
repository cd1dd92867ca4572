// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package plan_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"

	"github.com/objectplane/bucketc/pkg/compiler"
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/plan"
)

// compile is a test shortcut; descriptors here are always valid.
func compile(t *testing.T, desc *descriptor.Bucket) *compiler.Bundle {
	t.Helper()
	b, err := compiler.Build(desc)
	require.NoError(t, err)
	return b
}

func TestCreateBucketInput(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name:              "assets",
		VersioningEnabled: true,
		ObjectLock:        &descriptor.ObjectLock{Enabled: true, Token: "tok"},
	})

	in := plan.CreateBucketInput(b)
	require.Equal(t, "assets", aws.ToString(in.Bucket))
	require.Equal(t, types.ObjectOwnership(descriptor.OwnershipBucketOwnerEnforced), in.ObjectOwnership)
	require.True(t, aws.ToBool(in.ObjectLockEnabledForBucket))
}

func TestVersioningInput_NilWhenDisabled(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{Name: "plain"})
	require.Nil(t, plan.VersioningInput(b))

	b = compile(t, &descriptor.Bucket{Name: "versioned", VersioningEnabled: true})
	in := plan.VersioningInput(b)
	require.NotNil(t, in)
	require.Equal(t, types.BucketVersioningStatusEnabled, in.VersioningConfiguration.Status)
}

func TestLifecycleInput(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "logs",
		LifecycleRules: map[string]descriptor.LifecycleRule{
			"rotate": {
				Filter: &descriptor.Filter{Prefix: aws.String("app/")},
				Transitions: []descriptor.LifecycleTransition{
					{Days: 90, StorageClass: "GLACIER"},
					{Days: 30, StorageClass: "STANDARD_IA"},
				},
				Expiration: &descriptor.LifecycleExpiration{DaysAfterObjectCreation: aws.Int64(365)},
			},
		},
	})

	in := plan.LifecycleInput(b)
	require.NotNil(t, in)
	require.Len(t, in.LifecycleConfiguration.Rules, 1)

	rule := in.LifecycleConfiguration.Rules[0]
	require.Equal(t, "rotate", aws.ToString(rule.ID))
	require.Equal(t, types.ExpirationStatusEnabled, rule.Status)
	require.Equal(t, "app/", aws.ToString(rule.Filter.Prefix))

	require.Len(t, rule.Transitions, 2)
	require.Equal(t, int32(30), aws.ToInt32(rule.Transitions[0].Days))
	require.Equal(t, types.TransitionStorageClass("STANDARD_IA"), rule.Transitions[0].StorageClass)
	require.Equal(t, int32(90), aws.ToInt32(rule.Transitions[1].Days))

	require.Equal(t, int32(365), aws.ToInt32(rule.Expiration.Days))
	require.Nil(t, rule.Expiration.ExpiredObjectDeleteMarker)
}

func TestLifecycleInput_DeleteMarkerCleanup(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "logs",
		LifecycleRules: map[string]descriptor.LifecycleRule{
			"markers": {Expiration: &descriptor.LifecycleExpiration{CleanUpDeleteMarkers: true}},
		},
	})

	rule := plan.LifecycleInput(b).LifecycleConfiguration.Rules[0]
	require.Nil(t, rule.Expiration.Days)
	require.True(t, aws.ToBool(rule.Expiration.ExpiredObjectDeleteMarker))
}

func TestLifecycleInput_ConjoinedFilterUsesAnd(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "logs",
		LifecycleRules: map[string]descriptor.LifecycleRule{
			"cold": {
				Filter: &descriptor.Filter{
					Prefix:                aws.String("archive/"),
					Tags:                  map[string]string{"tier": "cold"},
					ObjectSizeGreaterThan: aws.Int64(1024),
				},
				AbortIncompleteMultipartUploadDays: aws.Int64(7),
			},
		},
	})

	filter := plan.LifecycleInput(b).LifecycleConfiguration.Rules[0].Filter
	require.Nil(t, filter.Prefix)
	require.NotNil(t, filter.And)
	require.Equal(t, "archive/", aws.ToString(filter.And.Prefix))
	require.Equal(t, int64(1024), aws.ToInt64(filter.And.ObjectSizeGreaterThan))
	require.Len(t, filter.And.Tags, 1)
}

func TestReplicationInput(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "primary",
		Encryption: &descriptor.Encryption{
			SSEAlgorithm: descriptor.SSEAlgorithmKMS,
			KMSKeyID:     "key-1",
		},
		Replication: map[string]descriptor.ReplicationRule{
			"dr": {
				DestinationBucket: "arn:aws:s3:::replica",
				Priority:          1,
				EncryptedObjects:  &descriptor.EncryptedObjectReplication{ReplicaKMSKeyID: "key-2"},
				OwnershipTransfer: &descriptor.OwnershipTransfer{DestinationAccountID: "999999999999"},
				Features:          &descriptor.ReplicationFeatures{TimeControl: true, DeleteMarkerReplication: true},
			},
		},
	})

	in := plan.ReplicationInput(b, "arn:aws:iam::1:role/replication")
	require.NotNil(t, in)
	require.Equal(t, "arn:aws:iam::1:role/replication", aws.ToString(in.ReplicationConfiguration.Role))

	rule := in.ReplicationConfiguration.Rules[0]
	require.Equal(t, int32(1), aws.ToInt32(rule.Priority))
	require.Equal(t, types.DeleteMarkerReplicationStatusEnabled, rule.DeleteMarkerReplication.Status)
	require.Equal(t, "999999999999", aws.ToString(rule.Destination.Account))
	require.Equal(t, types.OwnerOverrideDestination, rule.Destination.AccessControlTranslation.Owner)
	require.Equal(t, "key-2", aws.ToString(rule.Destination.EncryptionConfiguration.ReplicaKmsKeyID))
	require.Equal(t, types.SseKmsEncryptedObjectsStatusEnabled,
		rule.SourceSelectionCriteria.SseKmsEncryptedObjects.Status)
	require.NotNil(t, rule.Destination.ReplicationTime)
}

func TestNotificationInput(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "media",
		Notifications: map[string][]descriptor.EventSubscription{
			"arn:aws:sqs:us-east-1:1:events": {
				{Events: []string{"s3:ObjectCreated:*"}, FilterPrefix: aws.String("img/")},
			},
			"arn:aws:lambda:us-east-1:1:function:resize": {
				{Events: []string{"s3:ObjectCreated:Put"}},
			},
		},
	})

	in := plan.NotificationInput(b)
	require.NotNil(t, in)

	cfg := in.NotificationConfiguration
	require.Len(t, cfg.QueueConfigurations, 1)
	require.Equal(t, "arn:aws:sqs:us-east-1:1:events", aws.ToString(cfg.QueueConfigurations[0].QueueArn))
	require.Equal(t, []types.Event{"s3:ObjectCreated:*"}, cfg.QueueConfigurations[0].Events)
	keyRules := cfg.QueueConfigurations[0].Filter.Key.FilterRules
	require.Len(t, keyRules, 1)
	require.Equal(t, types.FilterRuleNamePrefix, keyRules[0].Name)
	require.Equal(t, "img/", aws.ToString(keyRules[0].Value))

	require.Len(t, cfg.LambdaFunctionConfigurations, 1)
	require.Nil(t, cfg.LambdaFunctionConfigurations[0].Filter, "no key filter when no prefix or suffix is set")
	require.Empty(t, cfg.TopicConfigurations)
}

func TestInventoryAndTieringInputs(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name: "data",
		InventoryRules: map[string]descriptor.InventoryRule{
			"weekly": {
				DestinationBucket:        "reports",
				IncludeNoncurrentObjects: aws.Bool(false),
				Filter:                   &descriptor.Filter{Prefix: aws.String("raw/")},
			},
		},
		TieringRules: map[string]descriptor.TieringRule{
			"cold": {AccessTier: descriptor.AccessTierArchive, Days: 120},
		},
	})

	invs := plan.InventoryInputs(b)
	require.Len(t, invs, 1)
	inv := invs[0].InventoryConfiguration
	require.Equal(t, types.InventoryIncludedObjectVersionsCurrent, inv.IncludedObjectVersions)
	require.Equal(t, types.InventoryFormat("CSV"), inv.Destination.S3BucketDestination.Format)
	require.Equal(t, "raw/", aws.ToString(inv.Filter.Prefix))

	tiers := plan.TieringInputs(b)
	require.Len(t, tiers, 1)
	tier := tiers[0].IntelligentTieringConfiguration
	require.Equal(t, types.IntelligentTieringAccessTier("ARCHIVE_ACCESS"), tier.Tierings[0].AccessTier)
	require.Equal(t, int32(120), aws.ToInt32(tier.Tierings[0].Days))
}

func TestOperations_ApplyOrder(t *testing.T) {
	t.Parallel()

	b := compile(t, &descriptor.Bucket{
		Name:              "full",
		VersioningEnabled: true,
		Tags:              map[string]string{"env": "prod"},
		Encryption:        &descriptor.Encryption{SSEAlgorithm: descriptor.SSEAlgorithmAES256},
		LifecycleRules: map[string]descriptor.LifecycleRule{
			"rotate": {Expiration: &descriptor.LifecycleExpiration{DaysAfterObjectCreation: aws.Int64(30)}},
		},
	})

	ops := plan.Operations(b)
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
		require.NotNil(t, op.Input)
	}

	require.Equal(t, []string{
		"CreateBucket",
		"PutBucketVersioning",
		"PutBucketEncryption",
		"PutPublicAccessBlock",
		"PutBucketOwnershipControls",
		"PutBucketRequestPayment",
		"PutBucketTagging",
		"PutBucketLifecycleConfiguration",
	}, names)
}

func TestOperations_MinimalBucket(t *testing.T) {
	t.Parallel()

	ops := plan.Operations(compile(t, &descriptor.Bucket{Name: "tiny"}))
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	require.Equal(t, []string{
		"CreateBucket",
		"PutPublicAccessBlock",
		"PutBucketOwnershipControls",
		"PutBucketRequestPayment",
	}, names)
}
