package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/polyglot-backend/internal/auth"
)

type tokenIssuer interface {
	Issue(client string) (auth.IssuedToken, error)
}

func newTokenCommand(open func(context.Context) (tokenIssuer, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "issue CLIENT",
		Short: "Issue a bearer token for a named client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issuer, err := open(cmd.Context())
			if err != nil {
				return err
			}
			tok, err := issuer.Issue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			cmd.PrintErrf("expires %s\n", tok.ExpiresAt.Local().Format(time.RFC3339))
			return nil
		},
	})
	return cmd
}
