// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

// EventType names a bucket event a notification destination can subscribe
// to. The vocabulary covers the created, removed, restore, replication, and
// lifecycle families, including the per-family wildcard forms.
type EventType string

const (
	// Object created events
	EventObjectCreated               EventType = "s3:ObjectCreated:*"
	EventObjectCreatedPut            EventType = "s3:ObjectCreated:Put"
	EventObjectCreatedPost           EventType = "s3:ObjectCreated:Post"
	EventObjectCreatedCopy           EventType = "s3:ObjectCreated:Copy"
	EventObjectCreatedCompleteUpload EventType = "s3:ObjectCreated:CompleteMultipartUpload"

	// Object removed events
	EventObjectRemoved             EventType = "s3:ObjectRemoved:*"
	EventObjectRemovedDelete       EventType = "s3:ObjectRemoved:Delete"
	EventObjectRemovedDeleteMarker EventType = "s3:ObjectRemoved:DeleteMarkerCreated"

	// Object restore events
	EventObjectRestore          EventType = "s3:ObjectRestore:*"
	EventObjectRestorePost      EventType = "s3:ObjectRestore:Post"
	EventObjectRestoreCompleted EventType = "s3:ObjectRestore:Completed"
	EventObjectRestoreDelete    EventType = "s3:ObjectRestore:Delete"

	// Replication events
	EventReplication                EventType = "s3:Replication:*"
	EventReplicationCompleted       EventType = "s3:Replication:OperationCompletedReplication"
	EventReplicationFailed          EventType = "s3:Replication:OperationFailedReplication"
	EventReplicationMissedThreshold EventType = "s3:Replication:OperationMissedThreshold"

	// Lifecycle events
	EventLifecycleExpiration             EventType = "s3:LifecycleExpiration:*"
	EventLifecycleExpirationDelete       EventType = "s3:LifecycleExpiration:Delete"
	EventLifecycleExpirationDeleteMarker EventType = "s3:LifecycleExpiration:DeleteMarkerCreated"
	EventLifecycleTransition             EventType = "s3:LifecycleTransition"
)

var knownEvents = map[EventType]struct{}{
	EventObjectCreated:                   {},
	EventObjectCreatedPut:                {},
	EventObjectCreatedPost:               {},
	EventObjectCreatedCopy:               {},
	EventObjectCreatedCompleteUpload:     {},
	EventObjectRemoved:                   {},
	EventObjectRemovedDelete:             {},
	EventObjectRemovedDeleteMarker:       {},
	EventObjectRestore:                   {},
	EventObjectRestorePost:               {},
	EventObjectRestoreCompleted:          {},
	EventObjectRestoreDelete:             {},
	EventReplication:                     {},
	EventReplicationCompleted:            {},
	EventReplicationFailed:               {},
	EventReplicationMissedThreshold:      {},
	EventLifecycleExpiration:             {},
	EventLifecycleExpirationDelete:       {},
	EventLifecycleExpirationDeleteMarker: {},
	EventLifecycleTransition:             {},
}

// ValidEvent reports whether name belongs to the recognized event
// vocabulary.
func ValidEvent(name string) bool {
	_, ok := knownEvents[EventType(name)]
	return ok
}
