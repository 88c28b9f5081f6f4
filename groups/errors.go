// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package groups

import "fmt"

// ConfigurationError is a static authoring mistake in group declarations,
// such as an unknown group kind or a malformed group path. Forms with
// configuration errors are not built at all.
type ConfigurationError struct {

	// Member is the name of the member whose declaration is wrong, if known.
	Member string

	// Reason describes the mistake.
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Member == "" {
		return "groups: " + e.Reason
	}
	return fmt.Sprintf("groups: member %q: %s", e.Member, e.Reason)
}

// withMember returns the given error with the member set
// if it is a [ConfigurationError] without one.
func withMember(err error, member string) error {
	if ce, ok := err.(*ConfigurationError); ok && ce.Member == "" {
		return &ConfigurationError{Member: member, Reason: ce.Reason}
	}
	return err
}
