// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client-supplied fitness records before they
// reach storage.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule for the value's type runs; otherwise only the named
// rules do, which lets callers re-check a single field after defaulting
// others.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
