// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"sort"
	"strconv"

	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// Field validators. Each is a pure function over one sub-configuration that
// appends zero or more violations to the sink and never aborts.

func validateBucket(desc *descriptor.Bucket, sink *violation.List) {
	if desc.Name == "" {
		sink.AddError(sectionBucket, "", "name", violation.RequiresField,
			"bucket name is required")
	}

	if desc.ObjectOwnership != nil {
		switch *desc.ObjectOwnership {
		case descriptor.OwnershipBucketOwnerPreferred,
			descriptor.OwnershipObjectWriter,
			descriptor.OwnershipBucketOwnerEnforced:
		default:
			sink.AddError(sectionBucket, "", "object_ownership", violation.InvalidEnumValue,
				"object_ownership %q is not a recognized ownership mode", *desc.ObjectOwnership)
		}
	}

	// Billing must be attributable when the requester pays.
	if desc.RequesterPays && desc.BucketOwnerAccountID == "" {
		sink.AddError(sectionBucket, "", "bucket_owner_account_id", violation.RequiresField,
			"requester_pays requires bucket_owner_account_id")
	}
}

func validateTags(tags map[string]string, section, rule, field string, sink *violation.List) {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" {
			sink.AddError(section, rule, field, violation.RequiresField,
				"tag key cannot be empty")
			continue
		}
		if len(k) > descriptor.MaxTagKeyLength {
			sink.AddError(section, rule, field+"."+k, violation.OutOfRange,
				"tag key cannot exceed %d characters", descriptor.MaxTagKeyLength)
		}
		if len(tags[k]) > descriptor.MaxTagValueLength {
			sink.AddError(section, rule, field+"."+k, violation.OutOfRange,
				"tag value cannot exceed %d characters", descriptor.MaxTagValueLength)
		}
	}
}

func validateObjectLock(desc *descriptor.Bucket, sink *violation.List) {
	lock := desc.ObjectLock
	if lock == nil {
		return
	}

	if lock.Enabled && !desc.VersioningEnabled {
		sink.AddError(sectionObjectLock, "", "versioning_enabled", violation.RequiresField,
			"enables_object_lock requires versioning_enabled = true")
	}

	// With a lock token the control plane already holds the retention
	// settings; without one, a default retention must be fully specified.
	if lock.Token == "" && lock.DefaultRetention != nil {
		ret := lock.DefaultRetention
		if ret.RetentionDays == nil {
			sink.AddError(sectionObjectLock, "", "default_retention.retention_days", violation.RequiresField,
				"default_retention requires retention_days")
		} else if *ret.RetentionDays < 1 {
			sink.AddError(sectionObjectLock, "", "default_retention.retention_days", violation.OutOfRange,
				"retention_days must be at least 1, got %d", *ret.RetentionDays)
		}
		if ret.RetentionMode == nil {
			sink.AddError(sectionObjectLock, "", "default_retention.retention_mode", violation.RequiresField,
				"default_retention requires retention_mode")
		} else if *ret.RetentionMode != descriptor.RetentionModeGovernance &&
			*ret.RetentionMode != descriptor.RetentionModeCompliance {
			sink.AddError(sectionObjectLock, "", "default_retention.retention_mode", violation.InvalidEnumValue,
				"retention_mode must be %s or %s, got %q",
				descriptor.RetentionModeGovernance, descriptor.RetentionModeCompliance, *ret.RetentionMode)
		}
	}
}

func validateEncryption(desc *descriptor.Bucket, sink *violation.List) {
	enc := desc.Encryption
	if enc == nil {
		return
	}

	switch enc.SSEAlgorithm {
	case descriptor.SSEAlgorithmAES256:
		if enc.KMSKeyID != "" {
			sink.AddError(sectionEncryption, "", "kms_key_id", violation.MutuallyExclusive,
				"kms_key_id cannot be set with sse_algorithm %s", descriptor.SSEAlgorithmAES256)
		}
	case descriptor.SSEAlgorithmKMS:
		if enc.KMSKeyID == "" {
			sink.AddError(sectionEncryption, "", "kms_key_id", violation.RequiresField,
				"sse_algorithm %s requires kms_key_id", descriptor.SSEAlgorithmKMS)
		}
	default:
		sink.AddError(sectionEncryption, "", "sse_algorithm", violation.InvalidEnumValue,
			"sse_algorithm must be %s or %s, got %q",
			descriptor.SSEAlgorithmAES256, descriptor.SSEAlgorithmKMS, enc.SSEAlgorithm)
	}
}

func validateWebsite(desc *descriptor.Bucket, sink *violation.List) {
	site := desc.Website
	if site == nil {
		return
	}

	if site.RedirectRequests != nil && site.StaticWebsite != nil {
		sink.AddError(sectionWebsite, "", "redirect_requests_for_an_object", violation.MutuallyExclusive,
			"redirect_requests_for_an_object and static_website are mutually exclusive")
		return
	}

	switch {
	case site.RedirectRequests != nil:
		if site.RedirectRequests.HostName == "" {
			sink.AddError(sectionWebsite, "", "redirect_requests_for_an_object.host_name", violation.RequiresField,
				"redirect_requests_for_an_object requires host_name")
		}
	case site.StaticWebsite != nil:
		if site.StaticWebsite.IndexDocument == "" {
			sink.AddError(sectionWebsite, "", "static_website.index_document", violation.RequiresField,
				"static_website requires index_document")
		}
	default:
		sink.AddError(sectionWebsite, "", "", violation.RequiresField,
			"website requires one of redirect_requests_for_an_object or static_website")
	}
}

var corsMethods = map[string]struct{}{
	"GET": {}, "PUT": {}, "POST": {}, "DELETE": {}, "HEAD": {},
}

func validateCORS(desc *descriptor.Bucket, sink *violation.List) {
	for i, rule := range desc.CORSRules {
		name := rule.ID
		if name == "" {
			name = corsRuleName(i)
		}
		if len(rule.AllowedMethods) == 0 {
			sink.AddError(sectionCORS, name, "allowed_methods", violation.RequiresField,
				"cors rule requires at least one allowed method")
		}
		for _, m := range rule.AllowedMethods {
			if _, ok := corsMethods[m]; !ok {
				sink.AddError(sectionCORS, name, "allowed_methods", violation.InvalidEnumValue,
					"method %q is not allowed in cors rules", m)
			}
		}
		if len(rule.AllowedOrigins) == 0 {
			sink.AddError(sectionCORS, name, "allowed_origins", violation.RequiresField,
				"cors rule requires at least one allowed origin")
		}
		if rule.MaxAgeSeconds < 0 {
			sink.AddError(sectionCORS, name, "max_age_seconds", violation.OutOfRange,
				"max_age_seconds cannot be negative, got %d", rule.MaxAgeSeconds)
		}
	}
}

// corsRuleName synthesizes a stable key for violation paths; CORS rules
// arrive as a list, not a map.
func corsRuleName(i int) string {
	return "rule-" + strconv.Itoa(i)
}
