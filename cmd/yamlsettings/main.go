// Command yamlsettings is a diagnostic tool for the yamlsettings library.
//
// "yamlsettings version" prints the library version. "yamlsettings check"
// resolves and loads a set of settings files and prints the merged result,
// which is useful for debugging precedence between layered files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"

	"github.com/0xalexb/yamlsettings"
	"github.com/0xalexb/yamlsettings/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)

	err := app.Run(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "yamlsettings",
		Usage: "YAML settings source diagnostics",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the library version",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Fprintln(stdout, yamlsettings.Version)

					return nil
				},
			},
			checkCommand(stdout, stderr),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q", cmd.Args().First())
			}

			return errors.New("expected a command: version, check")
		},
	}
}

func checkCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "load the given settings files and print the merged result",
		ArgsUsage: "file [file ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "optional",
				Usage: "treat missing files as skippable instead of fatal",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "trace resolution and load steps",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			optional := cmd.Bool("optional")

			config, err := yamlsettings.Resolve(yamlsettings.Declaration{
				Files:    cmd.Args().Slice(),
				Optional: &optional,
			}, yamlsettings.Declaration{})
			if err != nil {
				return err
			}

			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  "DEBUG",
				Format: "text",
			}, stderr)

			source := yamlsettings.NewSource(config,
				yamlsettings.WithLogger(logger),
				yamlsettings.WithVerbose(cmd.Bool("verbose")),
			)

			settings, err := source.Load()
			if err != nil {
				return err
			}

			encoded, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("encoding merged settings: %w", err)
			}

			_, err = stdout.Write(encoded)

			return err
		},
	}
}
