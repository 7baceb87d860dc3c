package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/console"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/storage"
)

var sourceCmd = &cobra.Command{
	Use:   "add-source",
	Short: "Interactively record a source document",
	Long: "A source records why something exists in the tree, for " +
		"example the census page a person was found on.",
	RunE: func(cmd *cobra.Command, args []string) error {
		layer, err := openStorage()
		if err != nil {
			return err
		}
		defer layer.Close()

		p := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

		title, err := console.Ask(p, "Title", console.Required)
		if err != nil {
			return err
		}
		sourceType, err := console.Ask(p, "Source type", console.Required)
		if err != nil {
			return err
		}
		authority, err := p.AskString("Authority")
		if err != nil {
			return err
		}
		author, err := p.AskString("Author")
		if err != nil {
			return err
		}

		src := storage.NewSource(title, sourceType, authority, author)
		if _, err := layer.AddSource(src); err != nil {
			return fmt.Errorf("adding source: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "recorded source %s\n", src.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}
