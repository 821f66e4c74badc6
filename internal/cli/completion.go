package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for termplot.

Load it into the current shell:

  bash:        source <(termplot completion bash)
  zsh:         source <(termplot completion zsh)
  fish:        termplot completion fish | source
  powershell:  termplot completion powershell | Out-String | Invoke-Expression

To load completions in every session, write the script to your shell's
completion directory instead, e.g.

  termplot completion bash > /etc/bash_completion.d/termplot
  termplot completion zsh > "${fpath[1]}/_termplot"
  termplot completion fish > ~/.config/fish/completions/termplot.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
