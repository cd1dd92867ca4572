// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"sort"

	"github.com/google/uuid"

	"github.com/objectplane/bucketc/pkg/descriptor"
)

// newBundle builds the bundle skeleton from a descriptor that passed field
// validation, applying declared defaults where fields are unset and
// resolving values implied by other fields. Explicit values are never
// overridden. Rule collections are filled in later by the per-concern
// compilers.
func newBundle(desc *descriptor.Bucket) *Bundle {
	b := &Bundle{
		ID:             uuid.NewSHA1(bundleNamespace, []byte(desc.Name)),
		Name:           desc.Name,
		OwnerAccountID: desc.BucketOwnerAccountID,
		Tags:           sortedTags(desc.Tags),

		ObjectOwnership:      descriptor.OwnershipBucketOwnerEnforced,
		RequestPayment:       descriptor.PayerBucketOwner,
		TransferAcceleration: desc.TransferAcceleration,

		Policy: desc.Policy,
		CORS:   desc.CORSRules,
	}

	if desc.ObjectOwnership != nil {
		b.ObjectOwnership = *desc.ObjectOwnership
	}
	if desc.RequesterPays {
		b.RequestPayment = descriptor.PayerRequester
	}

	// Object lock implies versioning on the compiled configuration.
	b.VersioningEnabled = desc.VersioningEnabled
	if lock := desc.ObjectLock; lock != nil && lock.Enabled {
		b.VersioningEnabled = true
		cfg := &ObjectLockConfig{Enabled: true, Token: lock.Token}
		if ret := lock.DefaultRetention; ret != nil {
			if ret.RetentionMode != nil {
				cfg.RetentionMode = *ret.RetentionMode
			}
			if ret.RetentionDays != nil {
				cfg.RetentionDays = *ret.RetentionDays
			}
		}
		b.ObjectLock = cfg
	}

	if enc := desc.Encryption; enc != nil {
		b.Encryption = &EncryptionConfig{
			Algorithm:        enc.SSEAlgorithm,
			KMSKeyID:         enc.KMSKeyID,
			BucketKeyEnabled: boolOr(enc.BucketKeyEnabled, false),
		}
	}

	if pab := desc.PublicAccessBlock; pab != nil {
		b.PublicAccessBlock = PublicAccessBlockConfig{
			BlockPublicAcls:       boolOr(pab.BlockPublicAcls, false),
			IgnorePublicAcls:      boolOr(pab.IgnorePublicAcls, false),
			BlockPublicPolicy:     boolOr(pab.BlockPublicPolicy, false),
			RestrictPublicBuckets: boolOr(pab.RestrictPublicBuckets, false),
		}
	}

	// Fold the two optional website fields into the tagged variant; the
	// validator already guaranteed exactly one is set.
	if site := desc.Website; site != nil {
		switch {
		case site.RedirectRequests != nil:
			redirect := *site.RedirectRequests
			b.Website = &WebsiteConfig{Mode: WebsiteRedirect, Redirect: &redirect}
		case site.StaticWebsite != nil:
			static := *site.StaticWebsite
			b.Website = &WebsiteConfig{Mode: WebsiteStatic, Static: &static}
		}
	}

	return b
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// sortedTags copies a tag map into a key-sorted slice for deterministic
// output.
func sortedTags(tags map[string]string) []descriptor.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]descriptor.Tag, 0, len(tags))
	for k, v := range tags {
		out = append(out, descriptor.Tag{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
