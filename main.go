// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/luoxiaozero/icondata/cmd/icondata"

func main() {
	cmd.Execute()
}
