// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

// Package plan mechanically translates a compiled bundle into control-plane
// request values. It constructs aws-sdk-go-v2 inputs only; issuing the
// calls, credentials, retries, and reconciliation belong to the caller.
package plan

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/objectplane/bucketc/pkg/compiler"
	"github.com/objectplane/bucketc/pkg/descriptor"
)

// CreateBucketInput builds the initial bucket creation request.
func CreateBucketInput(b *compiler.Bundle) *s3.CreateBucketInput {
	in := &s3.CreateBucketInput{
		Bucket:          aws.String(b.Name),
		ObjectOwnership: types.ObjectOwnership(b.ObjectOwnership),
	}
	if b.ObjectLock != nil && b.ObjectLock.Enabled {
		in.ObjectLockEnabledForBucket = aws.Bool(true)
	}
	return in
}

// VersioningInput builds the versioning request, or nil when versioning is
// disabled.
func VersioningInput(b *compiler.Bundle) *s3.PutBucketVersioningInput {
	if !b.VersioningEnabled {
		return nil
	}
	return &s3.PutBucketVersioningInput{
		Bucket: aws.String(b.Name),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	}
}

// EncryptionInput builds the default-encryption request, or nil when the
// bundle has no encryption section.
func EncryptionInput(b *compiler.Bundle) *s3.PutBucketEncryptionInput {
	enc := b.Encryption
	if enc == nil {
		return nil
	}
	byDefault := &types.ServerSideEncryptionByDefault{
		SSEAlgorithm: types.ServerSideEncryption(enc.Algorithm),
	}
	if enc.KMSKeyID != "" {
		byDefault.KMSMasterKeyID = aws.String(enc.KMSKeyID)
	}
	return &s3.PutBucketEncryptionInput{
		Bucket: aws.String(b.Name),
		ServerSideEncryptionConfiguration: &types.ServerSideEncryptionConfiguration{
			Rules: []types.ServerSideEncryptionRule{{
				ApplyServerSideEncryptionByDefault: byDefault,
				BucketKeyEnabled:                   aws.Bool(enc.BucketKeyEnabled),
			}},
		},
	}
}

// ObjectLockInput builds the object-lock request, or nil when the lock is
// not enabled.
func ObjectLockInput(b *compiler.Bundle) *s3.PutObjectLockConfigurationInput {
	lock := b.ObjectLock
	if lock == nil || !lock.Enabled {
		return nil
	}
	in := &s3.PutObjectLockConfigurationInput{
		Bucket: aws.String(b.Name),
		ObjectLockConfiguration: &types.ObjectLockConfiguration{
			ObjectLockEnabled: types.ObjectLockEnabledEnabled,
		},
	}
	if lock.Token != "" {
		in.Token = aws.String(lock.Token)
	}
	if lock.RetentionMode != "" {
		in.ObjectLockConfiguration.Rule = &types.ObjectLockRule{
			DefaultRetention: &types.DefaultRetention{
				Mode: types.ObjectLockRetentionMode(lock.RetentionMode),
				Days: aws.Int32(int32(lock.RetentionDays)),
			},
		}
	}
	return in
}

// PublicAccessBlockInput builds the access-block request.
func PublicAccessBlockInput(b *compiler.Bundle) *s3.PutPublicAccessBlockInput {
	pab := b.PublicAccessBlock
	return &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(b.Name),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(pab.BlockPublicAcls),
			IgnorePublicAcls:      aws.Bool(pab.IgnorePublicAcls),
			BlockPublicPolicy:     aws.Bool(pab.BlockPublicPolicy),
			RestrictPublicBuckets: aws.Bool(pab.RestrictPublicBuckets),
		},
	}
}

// OwnershipControlsInput builds the object-ownership request.
func OwnershipControlsInput(b *compiler.Bundle) *s3.PutBucketOwnershipControlsInput {
	return &s3.PutBucketOwnershipControlsInput{
		Bucket: aws.String(b.Name),
		OwnershipControls: &types.OwnershipControls{
			Rules: []types.OwnershipControlsRule{{
				ObjectOwnership: types.ObjectOwnership(b.ObjectOwnership),
			}},
		},
	}
}

// AccelerateInput builds the transfer-acceleration request, or nil when
// acceleration is off.
func AccelerateInput(b *compiler.Bundle) *s3.PutBucketAccelerateConfigurationInput {
	if !b.TransferAcceleration {
		return nil
	}
	return &s3.PutBucketAccelerateConfigurationInput{
		Bucket: aws.String(b.Name),
		AccelerateConfiguration: &types.AccelerateConfiguration{
			Status: types.BucketAccelerateStatusEnabled,
		},
	}
}

// RequestPaymentInput builds the request-payment request.
func RequestPaymentInput(b *compiler.Bundle) *s3.PutBucketRequestPaymentInput {
	return &s3.PutBucketRequestPaymentInput{
		Bucket: aws.String(b.Name),
		RequestPaymentConfiguration: &types.RequestPaymentConfiguration{
			Payer: types.Payer(b.RequestPayment),
		},
	}
}

// TaggingInput builds the tagging request, or nil when the bundle has no
// tags.
func TaggingInput(b *compiler.Bundle) *s3.PutBucketTaggingInput {
	if len(b.Tags) == 0 {
		return nil
	}
	return &s3.PutBucketTaggingInput{
		Bucket:  aws.String(b.Name),
		Tagging: &types.Tagging{TagSet: tagSet(b.Tags)},
	}
}

// PolicyInput builds the bucket-policy request, or nil when no policy
// document was supplied. The document is passed through opaquely.
func PolicyInput(b *compiler.Bundle) *s3.PutBucketPolicyInput {
	if b.Policy == "" {
		return nil
	}
	return &s3.PutBucketPolicyInput{
		Bucket: aws.String(b.Name),
		Policy: aws.String(b.Policy),
	}
}

// WebsiteInput builds the website-hosting request, or nil when hosting is
// not configured.
func WebsiteInput(b *compiler.Bundle) *s3.PutBucketWebsiteInput {
	site := b.Website
	if site == nil {
		return nil
	}
	cfg := &types.WebsiteConfiguration{}
	switch site.Mode {
	case compiler.WebsiteRedirect:
		cfg.RedirectAllRequestsTo = &types.RedirectAllRequestsTo{
			HostName: aws.String(site.Redirect.HostName),
		}
		if site.Redirect.Protocol != "" {
			cfg.RedirectAllRequestsTo.Protocol = types.Protocol(site.Redirect.Protocol)
		}
	case compiler.WebsiteStatic:
		cfg.IndexDocument = &types.IndexDocument{Suffix: aws.String(site.Static.IndexDocument)}
		if site.Static.ErrorDocument != "" {
			cfg.ErrorDocument = &types.ErrorDocument{Key: aws.String(site.Static.ErrorDocument)}
		}
	}
	return &s3.PutBucketWebsiteInput{
		Bucket:               aws.String(b.Name),
		WebsiteConfiguration: cfg,
	}
}

// CORSInput builds the CORS request, or nil when no rules are set.
func CORSInput(b *compiler.Bundle) *s3.PutBucketCorsInput {
	if len(b.CORS) == 0 {
		return nil
	}
	rules := make([]types.CORSRule, 0, len(b.CORS))
	for _, r := range b.CORS {
		rule := types.CORSRule{
			AllowedHeaders: r.AllowedHeaders,
			AllowedMethods: r.AllowedMethods,
			AllowedOrigins: r.AllowedOrigins,
			ExposeHeaders:  r.ExposeHeaders,
		}
		if r.ID != "" {
			rule.ID = aws.String(r.ID)
		}
		if r.MaxAgeSeconds > 0 {
			rule.MaxAgeSeconds = aws.Int32(int32(r.MaxAgeSeconds))
		}
		rules = append(rules, rule)
	}
	return &s3.PutBucketCorsInput{
		Bucket:            aws.String(b.Name),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: rules},
	}
}

func tagSet(tags []descriptor.Tag) []types.Tag {
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, types.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)})
	}
	return out
}

func ruleFilterTags(f compiler.Filter) []types.Tag {
	return tagSet(f.Tags)
}
