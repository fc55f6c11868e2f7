package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/response"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "layout",
		Short: "Show the bonus squares of the standard board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Layout

			if err := client.Get("/api/v1/board/layout", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	})

	return cmd
}

func newWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <word>",
		Short: "Check whether a word is in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordCheck

			if err := client.Get("/api/v1/words/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	})

	return cmd
}
