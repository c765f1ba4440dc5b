package main

import (
	"fmt"
	"os"

	"github.com/mogud/jenga/cmd"
)

func main() {
	if err := cmd.Run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
