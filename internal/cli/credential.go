package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/polyglot-backend/internal/credential"
)

type credentialStore interface {
	Set(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Status(ctx context.Context) (credential.Status, error)
}

// credentials joins the file store with the resolver that decides which key
// is active.
type credentials struct {
	*credential.FileStore
	resolver *credential.Resolver
}

func (c *credentials) Status(ctx context.Context) (credential.Status, error) {
	return c.resolver.Status(ctx)
}

type credentialOpener func(context.Context) (credentialStore, func(), error)

func newCredentialCommand(open credentialOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage the stored translation API key",
	}
	cmd.AddCommand(
		newCredentialSetCommand(open),
		newCredentialStatusCommand(open),
		newCredentialClearCommand(open),
	)
	return cmd
}

func newCredentialSetCommand(open credentialOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "set [KEY]",
		Short: "Store an API key (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read key: %w", err)
				}
				key = strings.TrimSpace(line)
			}

			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.Set(cmd.Context(), key); err != nil {
				return err
			}
			return printStatus(cmd, store)
		},
	}
}

func newCredentialStatusCommand(open credentialOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which API key is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			return printStatus(cmd, store)
		},
	}
}

func newCredentialClearCommand(open credentialOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stored API key removed.")
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, store credentialStore) error {
	st, err := store.Status(cmd.Context())
	if err != nil {
		return err
	}
	if !st.Configured {
		fmt.Fprintln(cmd.OutOrStdout(), "No API key configured.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "API key %s (from %s)\n", st.Masked, st.Source)
	return nil
}
