package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/listview"
	"github.com/heartmarshall/polyglot-backend/internal/service/vocabulary"
)

type vocabularyStore interface {
	List(ctx context.Context, input vocabulary.ListInput) (listview.Page, error)
	Toggle(ctx context.Context, input vocabulary.ToggleInput) (*vocabulary.ToggleResult, error)
	DeleteMany(ctx context.Context, input vocabulary.DeleteManyInput) (int, error)
}

type vocabularyOpener func(context.Context) (vocabularyStore, func(), error)

func newVocabCommand(open vocabularyOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vocab",
		Aliases: []string{"vocabulary"},
		Short:   "Manage saved words",
	}
	cmd.AddCommand(
		newVocabListCommand(open),
		newVocabToggleCommand(open),
		newVocabDeleteCommand(open),
	)
	return cmd
}

func newVocabListCommand(open vocabularyOpener) *cobra.Command {
	var (
		in                  vocabulary.ListInput
		lang, column, order string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the saved words of a language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Language = domain.Language(lang)
			in.Column = domain.SortColumn(column)
			in.Order = domain.SortOrder(order)

			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			page, err := store.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			if page.TotalItems == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved words.")
				return nil
			}

			renderer{w: cmd.OutOrStdout()}.words(page.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d, %d words\n", page.CurrentPage, page.TotalPages, page.TotalItems)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&lang, "language", "l", "th", "language: ko, th, en")
	f.StringVarP(&in.Search, "search", "s", "", "filter by word, meaning or pronunciation")
	f.StringVar(&column, "sort", "", "sort column: word, meaning, pronunciation, created_at")
	f.StringVar(&order, "order", "", "sort order: asc, desc")
	f.IntVar(&in.Page, "page", 1, "page number")
	f.IntVar(&in.PageSize, "page-size", 20, "words per page")

	return cmd
}

func newVocabToggleCommand(open vocabularyOpener) *cobra.Command {
	var (
		in         vocabulary.ToggleInput
		lang, pron string
	)

	cmd := &cobra.Command{
		Use:   "toggle WORD",
		Short: "Save a word, or remove it when it is already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Word = args[0]
			in.Language = domain.Language(lang)
			if pron != "" {
				in.Pronunciation = &pron
			}

			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := store.Toggle(cmd.Context(), in)
			if err != nil {
				return err
			}
			switch res.Action {
			case domain.ToggleActionSave:
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s) as %s\n", res.Word.Word, res.Word.Language, res.Word.ID)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%s)\n", res.Word.Word, res.Word.Language)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&lang, "language", "l", "th", "language of the word: ko, th, en")
	f.StringVarP(&in.Meaning, "meaning", "m", "", "meaning to store with the word")
	f.StringVarP(&pron, "pronunciation", "p", "", "pronunciation to store with the word")

	return cmd
}

func newVocabDeleteCommand(open vocabularyOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete saved words by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, len(args))
			for i, a := range args {
				id, err := uuid.Parse(a)
				if err != nil {
					return fmt.Errorf("invalid id %q: %w", a, err)
				}
				ids[i] = id
			}

			store, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := store.DeleteMany(cmd.Context(), vocabulary.DeleteManyInput{IDs: ids})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d words\n", n, len(ids))
			return nil
		},
	}
}
