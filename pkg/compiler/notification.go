// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"strings"

	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/violation"
)

// compileNotifications classifies every destination by address shape,
// partitions the map by kind, and enforces destination arity: at most one
// queue and one topic destination per descriptor, function destinations
// unbounded.
func compileNotifications(desc *descriptor.Bucket, b *Bundle, sink *violation.List) {
	if len(desc.Notifications) == 0 {
		return
	}

	var queues, topics, functions []DestinationConfig

	for _, addr := range sortedKeys(desc.Notifications) {
		kind, err := descriptor.ClassifyDestination(addr)
		if err != nil {
			sink.AddError(sectionNotifications, addr, "", violation.InvalidEnumValue, "%s", err.Error())
			continue
		}

		cfg := DestinationConfig{Address: addr, Kind: kind}
		for _, sub := range desc.Notifications[addr] {
			cfg.Subscriptions = append(cfg.Subscriptions, compileSubscription(sub, addr, sink))
		}

		switch kind {
		case descriptor.DestinationQueue:
			queues = append(queues, cfg)
		case descriptor.DestinationTopic:
			topics = append(topics, cfg)
		case descriptor.DestinationFunction:
			functions = append(functions, cfg)
		}
	}

	if len(queues) > 1 {
		sink.AddError(sectionNotifications, "", "queue", violation.DuplicateKey,
			"at most one queue destination is allowed, got %s", joinAddresses(queues))
	} else if len(queues) == 1 {
		b.Notifications.Queue = &queues[0]
	}

	if len(topics) > 1 {
		sink.AddError(sectionNotifications, "", "topic", violation.DuplicateKey,
			"at most one topic destination is allowed, got %s", joinAddresses(topics))
	} else if len(topics) == 1 {
		b.Notifications.Topic = &topics[0]
	}

	b.Notifications.Functions = functions
}

// compileSubscription validates one event subscription. Subscription order
// within a destination is preserved.
func compileSubscription(sub descriptor.EventSubscription, addr string, sink *violation.List) SubscriptionConfig {
	if len(sub.Events) == 0 {
		sink.AddError(sectionNotifications, addr, "events", violation.RequiresField,
			"subscription requires at least one event type")
	}
	for _, ev := range sub.Events {
		if !descriptor.ValidEvent(ev) {
			sink.AddError(sectionNotifications, addr, "events", violation.InvalidEnumValue,
				"event type %q is not in the recognized vocabulary", ev)
		}
	}

	cfg := SubscriptionConfig{Events: sub.Events}
	if sub.FilterPrefix != nil {
		cfg.FilterPrefix = *sub.FilterPrefix
	}
	if sub.FilterSuffix != nil {
		cfg.FilterSuffix = *sub.FilterSuffix
	}

	// A prefix and suffix that together exceed the maximum key length can
	// never both match one key; the subscription is unreachable.
	if len(cfg.FilterPrefix)+len(cfg.FilterSuffix) > descriptor.MaxObjectKeyLength {
		sink.AddWarning(sectionNotifications, addr, "filter_prefix", violation.OutOfRange,
			"combined prefix and suffix length %d exceeds the maximum key length %d; no object can match",
			len(cfg.FilterPrefix)+len(cfg.FilterSuffix), descriptor.MaxObjectKeyLength)
	}

	return cfg
}

func joinAddresses(dests []DestinationConfig) string {
	addrs := make([]string, len(dests))
	for i, d := range dests {
		addrs[i] = d.Address
	}
	return strings.Join(addrs, ", ")
}
