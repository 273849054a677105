package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hatchdev/hatch/internal/cli"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools hatch depends on are installed",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checker := cli.NewDependencyChecker()
	statuses := checker.CheckAll()

	ok := color.New(color.FgGreen).SprintFunc()
	miss := color.New(color.FgYellow).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	missingRequired := false
	for _, st := range statuses {
		switch {
		case st.Installed:
			fmt.Printf("%s %s %s\n", ok("✓"), st.Name, st.Version)
		case st.Required:
			missingRequired = true
			fmt.Printf("%s %s: %s\n", fail("✗"), st.Name, st.Message)
		default:
			fmt.Printf("%s %s: %s\n", miss("-"), st.Name, st.Message)
		}
	}

	if missingRequired {
		return fmt.Errorf("required tools are missing")
	}
	return nil
}
