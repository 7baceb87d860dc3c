package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listPeopleCmd = &cobra.Command{
	Use:   "list-people",
	Short: "List recorded people",
	RunE: func(cmd *cobra.Command, args []string) error {
		layer, err := openStorage()
		if err != nil {
			return err
		}
		defer layer.Close()

		people, err := layer.Database().AllPeople()
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}
		for _, p := range people {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s %s (%s)\n",
				p.ID, deref(p.FirstName), deref(p.MiddleName), deref(p.LastName), p.Gender)
		}
		return nil
	},
}

var listSourcesCmd = &cobra.Command{
	Use:   "list-sources",
	Short: "List recorded sources, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		layer, err := openStorage()
		if err != nil {
			return err
		}
		defer layer.Close()

		sources, err := layer.Database().AllSources()
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
		for _, s := range sources {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s [%s]\n",
				s.ID, s.Created, s.Title, s.Type)
		}
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	rootCmd.AddCommand(listPeopleCmd)
	rootCmd.AddCommand(listSourcesCmd)
}
