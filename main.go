// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "github.com/snowfork/strkey/cmd"

func main() {
	cmd.Execute()
}
