package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/console"
)

var relateCmd = &cobra.Command{
	Use:   "relate <person-id> <relation> <person-id>",
	Short: "Record a familial relationship between two people",
	Long: "Relations use census wording: daughter, son, wife, husband, " +
		"head of house, daughter in law, son in law. The usual " +
		"abbreviations (d/o, s/o, w/o, h/o, dil, sil) work too.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		relation, err := console.FamilialRelation(args[1])
		if err != nil {
			return err
		}

		layer, err := openStorage()
		if err != nil {
			return err
		}
		defer layer.Close()

		from, err := layer.FindObject("Person", args[0])
		if err != nil {
			return err
		}
		if from == nil {
			return fmt.Errorf("no person with id %s", args[0])
		}
		to, err := layer.FindObject("Person", args[2])
		if err != nil {
			return err
		}
		if to == nil {
			return fmt.Errorf("no person with id %s", args[2])
		}

		if err := layer.Relate(from, relation, to); err != nil {
			return fmt.Errorf("recording relationship: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s of %s\n", args[0], relation, args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(relateCmd)
}
