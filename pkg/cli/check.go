package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/specificathor/pkg/logger"
	"github.com/dmitrymomot/specificathor/pkg/specification"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check values against a rule set",
		ArgsUsage: "[values...]",
		Description: `Evaluate every value against a built-in rule set and print a verdict per
value. The command fails when at least one value is invalid.

Values come from the positional arguments and, optionally, from a YAML file
holding a list of strings or a mapping with a "values" list.

# Examples

  specificathor check --rule username alice bob
  specificathor check -r email -f emails.yaml
  cat ids.yaml | specificathor check -r uuid -f -`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rule",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "rule set to apply (see the rules command)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   `YAML file with values to check, "-" for stdin`,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "maximum values evaluated at once; overrides SPECIFICATION_CONCURRENCY",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rs, err := LookupRuleSet(cmd.String("rule"))
			if err != nil {
				return fmt.Errorf("%w %q (available: %s)", err, cmd.String("rule"), strings.Join(ruleSetNames(), ", "))
			}

			values := cmd.Args().Slice()
			if path := cmd.String("file"); path != "" {
				fromFile, err := ReadValues(path, cmd.Root().Reader)
				if err != nil {
					return fmt.Errorf("%q: %w", path, err)
				}
				values = append(values, fromFile...)
			}
			if len(values) == 0 {
				return ErrNoValues
			}

			inv, err := newInvocation(ctx, cmd.String("log-level"), cmd.Root().ErrWriter)
			if err != nil {
				return err
			}

			opts := []specification.Option{
				specification.WithConfig(inv.spec),
				specification.WithLogger(inv.log),
			}
			if n := cmd.Int("concurrency"); n > 0 {
				opts = append(opts, specification.WithConcurrency(int(n)))
			}

			inv.log.InfoContext(inv.ctx, "checking values",
				logger.Component("cli"),
				slog.String("rule", rs.Name),
				logger.Candidates(len(values)),
			)

			results, err := rs.Check(values, opts...).GetResults(inv.ctx)
			if err != nil {
				return err
			}

			if err := report(cmd.Root().Writer, results); err != nil {
				return err
			}

			if !results.IsValid() {
				invalid := len(results.InvalidCandidates())
				inv.log.WarnContext(inv.ctx, "invalid values found",
					logger.Component("cli"),
					slog.String("rule", rs.Name),
					logger.Failures(results.TotalOfErrors()),
				)
				return fmt.Errorf("%w: %d of %d", ErrInvalidValues, invalid, results.Len())
			}
			return nil
		},
	}
}

// report writes one verdict line per value, followed by its failure messages.
func report(w io.Writer, results *specification.Results[string]) error {
	for _, res := range results.Results() {
		verdict := "valid"
		if !res.IsValid() {
			verdict = "invalid"
		}
		if _, err := fmt.Fprintf(w, "%s\t%q\n", verdict, res.Candidate()); err != nil {
			return err
		}
		for _, msg := range res.Errors().Messages() {
			if _, err := fmt.Fprintf(w, "  - %s\n", msg); err != nil {
				return err
			}
		}
	}
	return nil
}
