// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"fmt"
	"strings"
)

// EventSubscription subscribes a destination to a set of event types,
// optionally narrowed by key prefix/suffix filters. Subscriptions are
// grouped per destination address in Bucket.Notifications.
type EventSubscription struct {
	Events       []string `mapstructure:"events" json:"events"`
	FilterPrefix *string  `mapstructure:"filter_prefix" json:"filter_prefix,omitempty"`
	FilterSuffix *string  `mapstructure:"filter_suffix" json:"filter_suffix,omitempty"`
}

// DestinationKind classifies a notification destination by the shape of its
// address.
type DestinationKind uint8

const (
	DestinationUnknown DestinationKind = iota
	DestinationQueue
	DestinationTopic
	DestinationFunction
)

func (k DestinationKind) String() string {
	switch k {
	case DestinationQueue:
		return "queue"
	case DestinationTopic:
		return "topic"
	case DestinationFunction:
		return "function"
	default:
		return "unknown"
	}
}

// ClassifyDestination derives the destination kind from the service token of
// an ARN-shaped address ("arn:<partition>:<service>:..."). Unrecognized
// addresses are an error; they are never silently treated as function-type.
func ClassifyDestination(addr string) (DestinationKind, error) {
	parts := strings.Split(addr, ":")
	if len(parts) < 3 || parts[0] != "arn" {
		return DestinationUnknown, fmt.Errorf("destination %q is not an ARN-shaped address", addr)
	}
	switch parts[2] {
	case "sqs":
		return DestinationQueue, nil
	case "sns":
		return DestinationTopic, nil
	case "lambda":
		return DestinationFunction, nil
	default:
		return DestinationUnknown, fmt.Errorf("destination %q has unrecognized service %q", addr, parts[2])
	}
}

// MaxObjectKeyLength is the longest key the control plane accepts. A
// prefix+suffix filter pair longer than this can never match an object.
const MaxObjectKeyLength = 1024
