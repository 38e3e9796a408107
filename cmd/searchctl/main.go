// searchctl inspects how storefront queries resolve to category searches.
package main

import (
	"os"

	"storesearch/cmd/searchctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
