// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command folioctl is the operator CLI for a Folio deployment.
//
// # Commands
//
//   - hash-password    : prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//   - verify-password  : checks a password against a hash.
//   - migrate up       : applies pending schema migrations.
//   - migrate version  : prints the recorded schema version.
//   - version          : prints the build version.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
