package objval

import (
	"time"

	"github.com/tidalware/objstore/objerr"
)

// LifecycleRuleEnabled/LifecycleRuleDisabled are the valid values for 'LifecycleRule.Status'.
const (
	LifecycleRuleEnabled  = "Enabled"
	LifecycleRuleDisabled = "Disabled"
)

// LifecycleExpiration deletes objects once they reach a certain age; exactly one of the three trigger fields may be
// set.
type LifecycleExpiration struct {
	// Days deletes objects this many days after their last modification.
	Days *int

	// Date deletes matching objects on every run after the given date, regardless of their age. Deprecated by the
	// service, prefer 'CreatedBeforeDate'.
	Date *time.Time

	// CreatedBeforeDate deletes objects whose last modification is earlier than the given date.
	CreatedBeforeDate *time.Time
}

// Valid returns an error if more than one trigger field is set, <nil> otherwise.
func (e *LifecycleExpiration) Valid() error {
	if e == nil || numSet(e.Days != nil, e.Date != nil, e.CreatedBeforeDate != nil) <= 1 {
		return nil
	}

	return &objerr.UsageError{Reason: "only one of days, date and created-before-date may be specified"}
}

// LifecycleAbortMultipartUpload cleans up the parts of multipart uploads which were never completed; at most one of
// the two trigger fields may be set.
type LifecycleAbortMultipartUpload struct {
	// Days aborts uploads this many days after their parts were last modified.
	Days *int

	// CreatedBeforeDate aborts uploads whose parts were last modified earlier than the given date.
	CreatedBeforeDate *time.Time
}

// Valid returns an error if both trigger fields are set, <nil> otherwise.
func (a *LifecycleAbortMultipartUpload) Valid() error {
	if a == nil || numSet(a.Days != nil, a.CreatedBeforeDate != nil) <= 1 {
		return nil
	}

	return &objerr.UsageError{Reason: "days and created-before-date may not both be specified"}
}

// LifecycleStorageTransition moves objects into a cheaper storage class once they reach a certain age; at most one of
// the two trigger fields may be set.
type LifecycleStorageTransition struct {
	// Days transitions objects this many days after their last modification.
	Days *int

	// CreatedBeforeDate transitions objects whose last modification is earlier than the given date.
	CreatedBeforeDate *time.Time

	// StorageClass is the class objects are transitioned into.
	StorageClass StorageClass
}

// Valid returns an error if both trigger fields are set, <nil> otherwise.
func (s *LifecycleStorageTransition) Valid() error {
	if s == nil || numSet(s.Days != nil, s.CreatedBeforeDate != nil) <= 1 {
		return nil
	}

	return &objerr.UsageError{Reason: "days and created-before-date may not both be specified"}
}

// LifecycleRule groups the lifecycle actions applied to all objects sharing a key prefix.
type LifecycleRule struct {
	// ID is the name of the rule, unique within the bucket.
	ID string

	// Prefix limits the rule to objects whose key begins with it.
	Prefix string

	// Status is either 'LifecycleRuleEnabled' or 'LifecycleRuleDisabled'.
	Status string

	// Expiration deletes objects; optional.
	Expiration *LifecycleExpiration

	// AbortMultipartUpload cleans up incomplete uploads; optional.
	AbortMultipartUpload *LifecycleAbortMultipartUpload

	// StorageTransitions moves objects between storage classes; optional.
	StorageTransitions []LifecycleStorageTransition
}

// Valid returns an error if any of the rule's actions are invalid, <nil> otherwise.
func (r *LifecycleRule) Valid() error {
	if err := r.Expiration.Valid(); err != nil {
		return err
	}

	if err := r.AbortMultipartUpload.Valid(); err != nil {
		return err
	}

	for _, transition := range r.StorageTransitions {
		if err := transition.Valid(); err != nil {
			return err
		}
	}

	return nil
}

// numSet returns the number of the given booleans which are true.
func numSet(flags ...bool) int {
	var n int

	for _, flag := range flags {
		if flag {
			n++
		}
	}

	return n
}
