// Command tradebook manages partners, products, product types and sales.
// With no arguments it starts the interactive shell.
package main

import (
	"os"

	"github.com/mesh-intelligence/tradebook/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
