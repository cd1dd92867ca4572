// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/objectplane/bucketc/pkg/compiler"
)

// NotificationInput builds the notification request, or nil when no
// destinations are configured.
func NotificationInput(b *compiler.Bundle) *s3.PutBucketNotificationConfigurationInput {
	set := b.Notifications
	if set.Queue == nil && set.Topic == nil && len(set.Functions) == 0 {
		return nil
	}

	cfg := &types.NotificationConfiguration{}

	if q := set.Queue; q != nil {
		for _, sub := range q.Subscriptions {
			cfg.QueueConfigurations = append(cfg.QueueConfigurations, types.QueueConfiguration{
				QueueArn: aws.String(q.Address),
				Events:   eventList(sub.Events),
				Filter:   keyFilter(sub),
			})
		}
	}
	if t := set.Topic; t != nil {
		for _, sub := range t.Subscriptions {
			cfg.TopicConfigurations = append(cfg.TopicConfigurations, types.TopicConfiguration{
				TopicArn: aws.String(t.Address),
				Events:   eventList(sub.Events),
				Filter:   keyFilter(sub),
			})
		}
	}
	for _, fn := range set.Functions {
		for _, sub := range fn.Subscriptions {
			cfg.LambdaFunctionConfigurations = append(cfg.LambdaFunctionConfigurations,
				types.LambdaFunctionConfiguration{
					LambdaFunctionArn: aws.String(fn.Address),
					Events:            eventList(sub.Events),
					Filter:            keyFilter(sub),
				})
		}
	}

	return &s3.PutBucketNotificationConfigurationInput{
		Bucket:                    aws.String(b.Name),
		NotificationConfiguration: cfg,
	}
}

func eventList(events []string) []types.Event {
	out := make([]types.Event, len(events))
	for i, ev := range events {
		out[i] = types.Event(ev)
	}
	return out
}

func keyFilter(sub compiler.SubscriptionConfig) *types.NotificationConfigurationFilter {
	var rules []types.FilterRule
	if sub.FilterPrefix != "" {
		rules = append(rules, types.FilterRule{
			Name:  types.FilterRuleNamePrefix,
			Value: aws.String(sub.FilterPrefix),
		})
	}
	if sub.FilterSuffix != "" {
		rules = append(rules, types.FilterRule{
			Name:  types.FilterRuleNameSuffix,
			Value: aws.String(sub.FilterSuffix),
		})
	}
	if len(rules) == 0 {
		return nil
	}
	return &types.NotificationConfigurationFilter{
		Key: &types.S3KeyFilter{FilterRules: rules},
	}
}
