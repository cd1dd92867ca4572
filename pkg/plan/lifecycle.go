// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/objectplane/bucketc/pkg/compiler"
)

// LifecycleInput builds the lifecycle request, or nil when the bundle has
// no lifecycle rules. Compiled rule order is preserved.
func LifecycleInput(b *compiler.Bundle) *s3.PutBucketLifecycleConfigurationInput {
	if len(b.Lifecycle) == 0 {
		return nil
	}

	rules := make([]types.LifecycleRule, 0, len(b.Lifecycle))
	for _, cfg := range b.Lifecycle {
		rule := types.LifecycleRule{
			ID:     aws.String(cfg.Name),
			Status: types.ExpirationStatusEnabled,
			Filter: lifecycleFilter(cfg.Filter),
		}

		for _, tr := range cfg.Transitions {
			rule.Transitions = append(rule.Transitions, types.Transition{
				Days:         aws.Int32(int32(tr.Days)),
				StorageClass: types.TransitionStorageClass(tr.StorageClass),
			})
		}
		for _, tr := range cfg.NoncurrentTransitions {
			rule.NoncurrentVersionTransitions = append(rule.NoncurrentVersionTransitions,
				types.NoncurrentVersionTransition{
					NoncurrentDays: aws.Int32(int32(tr.Days)),
					StorageClass:   types.TransitionStorageClass(tr.StorageClass),
				})
		}

		switch {
		case cfg.ExpirationDays > 0:
			rule.Expiration = &types.LifecycleExpiration{
				Days: aws.Int32(int32(cfg.ExpirationDays)),
			}
		case cfg.CleanUpDeleteMarkers:
			rule.Expiration = &types.LifecycleExpiration{
				ExpiredObjectDeleteMarker: aws.Bool(true),
			}
		}

		if cfg.NoncurrentExpirationDays > 0 || cfg.NoncurrentRetainCount > 0 {
			nExp := &types.NoncurrentVersionExpiration{}
			if cfg.NoncurrentExpirationDays > 0 {
				nExp.NoncurrentDays = aws.Int32(int32(cfg.NoncurrentExpirationDays))
			}
			if cfg.NoncurrentRetainCount > 0 {
				nExp.NewerNoncurrentVersions = aws.Int32(int32(cfg.NoncurrentRetainCount))
			}
			rule.NoncurrentVersionExpiration = nExp
		}

		if cfg.AbortMultipartDays > 0 {
			rule.AbortIncompleteMultipartUpload = &types.AbortIncompleteMultipartUpload{
				DaysAfterInitiation: aws.Int32(int32(cfg.AbortMultipartDays)),
			}
		}

		rules = append(rules, rule)
	}

	return &s3.PutBucketLifecycleConfigurationInput{
		Bucket:                 aws.String(b.Name),
		LifecycleConfiguration: &types.BucketLifecycleConfiguration{Rules: rules},
	}
}

// lifecycleFilter renders a compiled conjoined filter. More than one
// criterion maps onto the And operator; a lone prefix stays top-level.
func lifecycleFilter(f compiler.Filter) *types.LifecycleRuleFilter {
	criteria := 0
	if f.Prefix != "" {
		criteria++
	}
	if len(f.Tags) > 0 {
		criteria++
	}
	if f.SizeGreaterThan != nil {
		criteria++
	}
	if f.SizeLessThan != nil {
		criteria++
	}

	switch {
	case criteria == 0:
		// Empty filter scopes the rule to the whole bucket.
		return &types.LifecycleRuleFilter{Prefix: aws.String("")}
	case criteria == 1 && f.Prefix != "":
		return &types.LifecycleRuleFilter{Prefix: aws.String(f.Prefix)}
	case criteria == 1 && len(f.Tags) == 1:
		return &types.LifecycleRuleFilter{Tag: &types.Tag{
			Key:   aws.String(f.Tags[0].Key),
			Value: aws.String(f.Tags[0].Value),
		}}
	default:
		and := &types.LifecycleRuleAndOperator{
			ObjectSizeGreaterThan: f.SizeGreaterThan,
			ObjectSizeLessThan:    f.SizeLessThan,
			Tags:                  ruleFilterTags(f),
		}
		if f.Prefix != "" {
			and.Prefix = aws.String(f.Prefix)
		}
		return &types.LifecycleRuleFilter{And: and}
	}
}
