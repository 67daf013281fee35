// Package cli implements the polyglot command line: the API server plus
// local translate, vocabulary, credential, token and migration commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the polyglot command tree.
func NewRootCommand() *cobra.Command {
	l := &loader{}

	root := &cobra.Command{
		Use:           "polyglot",
		Short:         "Korean/Thai/English translation assistant",
		Long:          `Translate between Korean, Thai and English with a word guide, keep a vocabulary of saved words, and serve the same features over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&l.path, "config", "c", "", "YAML config file (environment variables override it)")

	root.AddCommand(
		newServeCommand(l.serve),
		newTranslateCommand(l.translation),
		newVocabCommand(l.vocabulary),
		newCredentialCommand(l.credentials),
		newTokenCommand(l.tokens),
		newMigrateCommand(l.migrations),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
