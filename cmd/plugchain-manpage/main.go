package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/plugchain/cmd/plugchain"
	"github.com/arthur-debert/plugchain/internal/version"
)

func main() {
	rootCmd := plugchain.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PLUGCHAIN",
		Section: "1",
		Source:  "plugchain " + version.Version,
		Manual:  "plugchain manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
