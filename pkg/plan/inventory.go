package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/objectplane/bucketc/pkg/compiler"
)

// InventoryInputs builds one request per compiled inventory rule.
func InventoryInputs(b *compiler.Bundle) []*s3.PutBucketInventoryConfigurationInput {
	if len(b.Inventory) == 0 {
		return nil
	}

	inputs := make([]*s3.PutBucketInventoryConfigurationInput, 0, len(b.Inventory))
	for _, cfg := range b.Inventory {
		versions := types.InventoryIncludedObjectVersionsCurrent
		if cfg.IncludeNoncurrent {
			versions = types.InventoryIncludedObjectVersionsAll
		}
		inv := &types.InventoryConfiguration{
			Id:                     aws.String(cfg.Name),
			IsEnabled:              aws.Bool(true),
			IncludedObjectVersions: versions,
			Schedule: &types.InventorySchedule{
				Frequency: types.InventoryFrequencyDaily,
			},
			Destination: &types.InventoryDestination{
				S3BucketDestination: &types.InventoryS3BucketDestination{
					Bucket: aws.String(cfg.DestinationBucket),
					Format: types.InventoryFormat(cfg.OutputFormat),
				},
			},
		}
		if cfg.Filter.Prefix != "" {
			inv.Filter = &types.InventoryFilter{Prefix: aws.String(cfg.Filter.Prefix)}
		}
		inputs = append(inputs, &s3.PutBucketInventoryConfigurationInput{
			Bucket:                 aws.String(b.Name),
			Id:                     aws.String(cfg.Name),
			InventoryConfiguration: inv,
		})
	}
	return inputs
}

// TieringInputs builds one request per compiled intelligent-tiering rule.
func TieringInputs(b *compiler.Bundle) []*s3.PutBucketIntelligentTieringConfigurationInput {
	if len(b.Tiering) == 0 {
		return nil
	}

	inputs := make([]*s3.PutBucketIntelligentTieringConfigurationInput, 0, len(b.Tiering))
	for _, cfg := range b.Tiering {
		tier := &types.IntelligentTieringConfiguration{
			Id:     aws.String(cfg.Name),
			Status: types.IntelligentTieringStatusEnabled,
			Tierings: []types.Tiering{{
				AccessTier: types.IntelligentTieringAccessTier(cfg.AccessTier),
				Days:       aws.Int32(int32(cfg.Days)),
			}},
		}
		if cfg.Filter.Prefix != "" || len(cfg.Filter.Tags) > 0 {
			tier.Filter = tieringFilter(cfg.Filter)
		}
		inputs = append(inputs, &s3.PutBucketIntelligentTieringConfigurationInput{
			Bucket:                          aws.String(b.Name),
			Id:                              aws.String(cfg.Name),
			IntelligentTieringConfiguration: tier,
		})
	}
	return inputs
}

func tieringFilter(f compiler.Filter) *types.IntelligentTieringFilter {
	switch {
	case len(f.Tags) == 0:
		return &types.IntelligentTieringFilter{Prefix: aws.String(f.Prefix)}
	case f.Prefix == "" && len(f.Tags) == 1:
		return &types.IntelligentTieringFilter{Tag: &types.Tag{
			Key:   aws.String(f.Tags[0].Key),
			Value: aws.String(f.Tags[0].Value),
		}}
	default:
		and := &types.IntelligentTieringAndOperator{Tags: ruleFilterTags(f)}
		if f.Prefix != "" {
			and.Prefix = aws.String(f.Prefix)
		}
		return &types.IntelligentTieringFilter{And: and}
	}
}
