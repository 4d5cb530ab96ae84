package cmd

import (
	"fmt"

	"github.com/gophertribe/devtool/test"
	"github.com/spf13/cobra"
)

// QualityCmds returns the code quality commands (unit tests, lint,
// integration tests), all thin wrappers around the devtool runners.
func QualityCmds() []*cobra.Command {
	targets := []struct {
		use   string
		short string
		run   func() error
	}{
		{use: "test", short: "Run tests", run: test.Test},
		{use: "lint", short: "Run linting", run: test.Lint},
		{use: "integration-test", short: "Run integration testing", run: test.Integ},
	}
	cmds := make([]*cobra.Command, 0, len(targets))
	for _, target := range targets {
		cmds = append(cmds, &cobra.Command{
			Use:   target.use,
			Short: target.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := target.run(); err != nil {
					return fmt.Errorf("%s failed: %w", cmd.Use, err)
				}
				return nil
			},
		})
	}
	return cmds
}
