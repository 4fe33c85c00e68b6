// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

// Package validators holds the input-validation rules for everything a
// client can submit: signup/login credentials and article forms. Services
// inject a Validator and call it before touching storage, which keeps the
// rules in one place and testable without a database.
package validators

import "context"

// Validator validates client-submitted values. Passing field names
// restricts the check to those fields; with none given the whole value is
// validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
