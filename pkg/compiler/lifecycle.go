// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"sort"

	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileLifecycle expands the named lifecycle rules into ordered,
// filter-scoped action lists. Rule names are preserved as output keys;
// output is sorted by rule name.
func compileLifecycle(desc *descriptor.Bucket, b *Bundle, sink *violation.List) {
	for _, name := range sortedKeys(desc.LifecycleRules) {
		rule := desc.LifecycleRules[name]
		cfg := LifecycleConfig{
			Name:   name,
			Filter: compileFilter(rule.Filter, sectionLifecycle, name, sink),
		}

		cfg.Transitions = compileTransitions(rule.Transitions, name, "transitions", sink)
		cfg.NoncurrentTransitions = compileTransitions(rule.NoncurrentTransitions, name, "noncurrent_version_transitions", sink)

		if exp := rule.Expiration; exp != nil {
			compileExpiration(exp, cfg.Transitions, name, sink)
			if exp.DaysAfterObjectCreation != nil {
				cfg.ExpirationDays = *exp.DaysAfterObjectCreation
			}
			cfg.CleanUpDeleteMarkers = exp.CleanUpDeleteMarkers
		}

		if nExp := rule.NoncurrentExpiration; nExp != nil {
			if nExp.Days != nil {
				if *nExp.Days < 1 {
					sink.AddError(sectionLifecycle, name, "noncurrent_version_expiration.days_after_objects_become_noncurrent",
						violation.OutOfRange, "noncurrent expiration days must be at least 1, got %d", *nExp.Days)
				}
				cfg.NoncurrentExpirationDays = *nExp.Days
			}
			if nExp.RetainCount != nil {
				if *nExp.RetainCount < 0 {
					sink.AddError(sectionLifecycle, name, "noncurrent_version_expiration.newer_noncurrent_versions_to_retain",
						violation.OutOfRange, "retain count cannot be negative, got %d", *nExp.RetainCount)
				}
				cfg.NoncurrentRetainCount = *nExp.RetainCount
			}
			if nExp.Days == nil && nExp.RetainCount == nil {
				sink.AddError(sectionLifecycle, name, "noncurrent_version_expiration", violation.RequiresField,
					"noncurrent_version_expiration must specify days or a retain count")
			}
		}

		if days := rule.AbortIncompleteMultipartUploadDays; days != nil {
			if *days < 1 {
				sink.AddError(sectionLifecycle, name, "abort_incomplete_multipart_upload_days",
					violation.OutOfRange, "abort threshold must be at least 1 day, got %d", *days)
			}
			cfg.AbortMultipartDays = *days
		}

		hasAction := len(cfg.Transitions) > 0 || len(cfg.NoncurrentTransitions) > 0 ||
			rule.Expiration != nil || rule.NoncurrentExpiration != nil ||
			rule.AbortIncompleteMultipartUploadDays != nil
		if !hasAction {
			sink.AddError(sectionLifecycle, name, "", violation.RequiresField,
				"rule must specify at least one action")
		}

		b.Lifecycle = append(b.Lifecycle, cfg)
	}
}

// compileTransitions validates storage-class legality and day-count
// monotonicity, returning the transitions sorted by day offset ascending.
// Compilation is order-invariant on input and order-deterministic on
// output.
func compileTransitions(in []descriptor.LifecycleTransition, rule, field string, sink *violation.List) []descriptor.LifecycleTransition {
	if len(in) == 0 {
		return nil
	}

	out := make([]descriptor.LifecycleTransition, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })

	for i, tr := range out {
		if tr.Days < 0 {
			sink.AddError(sectionLifecycle, rule, field+".days", violation.OutOfRange,
				"transition days cannot be negative, got %d", tr.Days)
		}
		sc, err := descriptor.ParseStorageClass(tr.StorageClass)
		if err != nil {
			sink.AddError(sectionLifecycle, rule, field+".storage_class", violation.InvalidEnumValue,
				"storage class %q is not recognized", tr.StorageClass)
		} else if !sc.TransitionAllowed() {
			sink.AddError(sectionLifecycle, rule, field+".storage_class", violation.InvalidEnumValue,
				"objects cannot be transitioned to storage class %s", sc)
		}
		// Sorted input makes any non-increasing step a duplicate offset.
		if i > 0 && tr.Days == out[i-1].Days {
			sink.AddError(sectionLifecycle, rule, field+".days", violation.NonMonotonicSequence,
				"transition day offsets must be strictly increasing; %d appears more than once", tr.Days)
		}
	}

	return out
}

// compileExpiration checks the expiration action against the rule's
// compiled transitions. A delete-marker cleanup is exclusive with a dated
// expiration, mirroring the control plane's own constraint.
func compileExpiration(exp *descriptor.LifecycleExpiration, transitions []descriptor.LifecycleTransition, rule string, sink *violation.List) {
	if exp.DaysAfterObjectCreation == nil && !exp.CleanUpDeleteMarkers {
		sink.AddError(sectionLifecycle, rule, "expiration", violation.RequiresField,
			"expiration must specify days_after_object_creation or clean_up_expired_object_delete_markers")
		return
	}

	if exp.DaysAfterObjectCreation != nil && exp.CleanUpDeleteMarkers {
		sink.AddError(sectionLifecycle, rule, "expiration.clean_up_expired_object_delete_markers",
			violation.MutuallyExclusive,
			"delete-marker cleanup cannot be combined with a dated expiration in one rule")
		return
	}

	if days := exp.DaysAfterObjectCreation; days != nil {
		if *days < 1 {
			sink.AddError(sectionLifecycle, rule, "expiration.days_after_object_creation",
				violation.OutOfRange, "expiration days must be at least 1, got %d", *days)
		}
		if n := len(transitions); n > 0 && *days <= transitions[n-1].Days {
			sink.AddError(sectionLifecycle, rule, "expiration.days_after_object_creation",
				violation.OutOfRange,
				"expiration after %d days must exceed the last transition at %d days",
				*days, transitions[n-1].Days)
		}
	}
}
