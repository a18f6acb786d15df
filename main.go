// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/jucelint/jucelint/cmd"

func main() {
	cmd.Execute()
}
