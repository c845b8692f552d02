package plugchain

import (
	"io"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/spf13/cobra"
)

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, "unsupported shell: %s", shell).
		WithDetail("supported", []string{"bash", "zsh", "fish", "powershell"})
}
