package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newServeCommand(serve func(context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and realtime API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}
