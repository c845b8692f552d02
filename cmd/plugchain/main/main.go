package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/plugchain/cmd/plugchain"
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/output/styles"
)

func main() {
	rootCmd := plugchain.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsSetupError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
