package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kastheco/lacquer/cmd"
)

func main() {
	if err := cmd.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lacquer:", err)
		os.Exit(1)
	}
}
