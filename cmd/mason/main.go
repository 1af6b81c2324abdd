// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program mason reads a MASON document from a file or standard input and
// prints the decoded value as JSON.
package main

import "os"

func main() {
	if err := newCLI(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
