// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command inspect builds the inspector form of a sample object against a
// persisted UI state file, applies the requested interactions, and prints
// the resulting widget tree.
package main

import (
	"os"

	"cogentcore.org/inspector/base/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
