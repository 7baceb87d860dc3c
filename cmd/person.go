package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/console"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/storage"
)

var personCmd = &cobra.Command{
	Use:   "add-person",
	Short: "Interactively add a person to the tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		layer, err := openStorage()
		if err != nil {
			return err
		}
		defer layer.Close()

		p := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

		first, err := p.AskString("First name")
		if err != nil {
			return err
		}
		middle, err := p.AskString("Middle name")
		if err != nil {
			return err
		}
		last, err := p.AskString("Last name")
		if err != nil {
			return err
		}
		gender, err := console.Ask(p, "Gender", console.Gender)
		if err != nil {
			return err
		}
		born, err := console.AskOptional(p, "Birth date (YYYY-MM-DD)", console.Date("2006-01-02"))
		if err != nil {
			return err
		}

		node, err := layer.AddPerson(storage.Person{
			FirstName:  first,
			MiddleName: middle,
			LastName:   last,
			Gender:     gender,
			Born:       born,
		})
		if err != nil {
			return fmt.Errorf("adding person: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "recorded person %s\n", node.ExternalID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
}
