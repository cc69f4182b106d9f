package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oikeuslab/precedent/internal/glossary"
)

var (
	glossaryPath string
	glossaryLang string
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Work with the multilingual legal glossary",
}

var glossaryExpandCmd = &cobra.Command{
	Use:   "expand <query>",
	Short: "Expand a query with Finnish legal term equivalents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := glossary.Load(glossaryPath)
		fmt.Fprintln(cmd.OutOrStdout(), g.Expand(args[0], glossaryLang))
		return nil
	},
}

var glossaryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print glossary entry counts per language",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := glossary.Load(glossaryPath)
		return render(cmd.OutOrStdout(), g.Stats())
	},
}

func init() {
	glossaryCmd.PersistentFlags().StringVar(&glossaryPath, "glossary", "data/legal_glossary.json", "path to the glossary JSON file")
	glossaryExpandCmd.Flags().StringVar(&glossaryLang, "lang", "en", "query language: en or sv")
	glossaryCmd.AddCommand(glossaryExpandCmd)
	glossaryCmd.AddCommand(glossaryStatsCmd)
}
