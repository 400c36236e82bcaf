package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	name           = "specificathor"
	versionDefault = "dev"
)

// overridden during build with ldflags
var version = versionDefault

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "log level (debug, info, warn, error); overrides SPECIFICATHOR_LOG_LEVEL",
}

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Check values against built-in specification rule sets",
		Flags:   []cli.Flag{logLevelFlag},
		Commands: []*cli.Command{
			checkCmd(),
			rulesCmd(),
		},
	}
}

func rulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the built-in rule sets",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			for _, rs := range RuleSets() {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", rs.Name, rs.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
