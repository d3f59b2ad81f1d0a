// Package sideeffect defines the concrete side-effect records reconciled by
// the reconcile and circuit packages.
//
// Effect is an execution ordered record with no storage position, for example
// a note hash or a nullifier. StorageWrite additionally carries the storage
// slot it writes to and is what deduplication operates on.
//
// The empty sentinel of both types is the zero value.
package sideeffect
