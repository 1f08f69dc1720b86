// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-24
// Last Modified: 2026-08-24

// Package main is the entry point for the decadog CLI.
package main

import (
	"github.com/similigh/decadog/cmd/decadog/commands"
)

func main() {
	commands.Execute()
}
