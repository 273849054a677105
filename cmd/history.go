package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hatchdev/hatch/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded deployments",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := history.DefaultPath()
		if err != nil {
			return err
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No deployments recorded yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-20s %-20s %s\n",
				e.DeployedAt.Local().Format("2006-01-02 15:04"),
				e.Project, e.AccountName, e.URL)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
