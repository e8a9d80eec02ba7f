package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var regionsWrite string

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the region reference table and its alias spellings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		tbl, err := loadRegionTable(c)
		if err != nil {
			return err
		}
		if regionsWrite != "" {
			if err := tbl.WriteFile(regionsWrite); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote reference table to %s\n", regionsWrite)
			return nil
		}
		for _, name := range tbl.Canonical() {
			pop, _ := tbl.Population(name)
			line := fmt.Sprintf("%-28s %11d", name, pop)
			if aliases := tbl.AliasesOf(name); len(aliases) > 0 {
				line += "  (also: " + strings.Join(aliases, ", ") + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
	regionsCmd.Flags().StringVar(&regionsWrite, "write", "", "export the effective reference table as YAML to this path")
}
