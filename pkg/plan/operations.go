package plan

import "github.com/objectplane/bucketc/pkg/compiler"

// Operation names one control-plane call the bundle requires, paired with
// the already-constructed input value.
type Operation struct {
	Name  string
	Input any
}

// Operations lists every call a caller must issue to realize the bundle, in
// apply order: the bucket first, then its sub-resources. Sections the
// bundle does not use are omitted.
func Operations(b *compiler.Bundle) []Operation {
	ops := []Operation{{Name: "CreateBucket", Input: CreateBucketInput(b)}}

	appendOp := func(name string, in any) {
		ops = append(ops, Operation{Name: name, Input: in})
	}

	if in := VersioningInput(b); in != nil {
		appendOp("PutBucketVersioning", in)
	}
	if in := ObjectLockInput(b); in != nil {
		appendOp("PutObjectLockConfiguration", in)
	}
	if in := EncryptionInput(b); in != nil {
		appendOp("PutBucketEncryption", in)
	}
	appendOp("PutPublicAccessBlock", PublicAccessBlockInput(b))
	appendOp("PutBucketOwnershipControls", OwnershipControlsInput(b))
	appendOp("PutBucketRequestPayment", RequestPaymentInput(b))
	if in := AccelerateInput(b); in != nil {
		appendOp("PutBucketAccelerateConfiguration", in)
	}
	if in := TaggingInput(b); in != nil {
		appendOp("PutBucketTagging", in)
	}
	if in := PolicyInput(b); in != nil {
		appendOp("PutBucketPolicy", in)
	}
	if in := CORSInput(b); in != nil {
		appendOp("PutBucketCors", in)
	}
	if in := WebsiteInput(b); in != nil {
		appendOp("PutBucketWebsite", in)
	}
	if in := LifecycleInput(b); in != nil {
		appendOp("PutBucketLifecycleConfiguration", in)
	}
	if in := ReplicationInput(b, ""); in != nil {
		appendOp("PutBucketReplication", in)
	}
	if in := NotificationInput(b); in != nil {
		appendOp("PutBucketNotificationConfiguration", in)
	}
	for _, in := range InventoryInputs(b) {
		appendOp("PutBucketInventoryConfiguration", in)
	}
	for _, in := range TieringInputs(b) {
		appendOp("PutBucketIntelligentTieringConfiguration", in)
	}

	return ops
}
