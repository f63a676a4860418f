package main

import (
	"os"
	"strings"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for dundun.

To load completions:

Bash:
  $ source <(dundun completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ dundun completion bash > /etc/bash_completion.d/dundun
  # macOS:
  $ dundun completion bash > $(brew --prefix)/etc/bash_completion.d/dundun

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ dundun completion zsh > "${fpath[1]}/_dundun"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dundun completion fish | source
  # To load completions for each session, execute once:
  $ dundun completion fish > ~/.config/fish/completions/dundun.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeStreakIDs completes short streak IDs, described by status and title.
// Streaks already named earlier on the command line are skipped.
func completeStreakIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	sess, err := openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer sess.Close()

	return streakCompletions(sess.store.Streaks(), args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func streakCompletions(streaks []model.Streak, args []string, toComplete string) []string {
	used := make(map[string]bool, len(args))
	for _, a := range args {
		if s, err := cli.ResolveStreak(streaks, a); err == nil {
			used[s.ID] = true
		}
	}

	at := now()
	toCompleteLower := strings.ToLower(toComplete)
	var completions []string
	for i := range streaks {
		s := &streaks[i]
		if used[s.ID] || !strings.HasPrefix(s.ID, toCompleteLower) {
			continue
		}
		status := string(model.ComputeStatus(s, at))
		completions = append(completions, model.ShortID(s.ID)+"\t"+status+": "+cli.Truncate(s.Title, 40))
	}
	return completions
}
