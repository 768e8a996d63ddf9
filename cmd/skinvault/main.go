package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"skinvault"
	"skinvault/skin"
)

const (
	defaultLibrary = "skinvault.db"
	defaultConfig  = "skinvault.toml"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).With().Timestamp().Str("app", "skinvault").Logger().Level(level)
}

// parseSlot rejects non-numeric slot arguments with the same error as
// out-of-range ones, before any file is touched.
func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", skinvault.ErrSlotOutOfRange, arg)
	}
	return slot, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "skinvault"
	app.Usage = "custom skin save file management utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"SKINVAULT_CONFIG"},
			Value:   defaultConfig,
			Usage:   "path to settings file",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SKINVAULT_DB"},
			Usage:   "path to skin library database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	var (
		roster *skinvault.Roster
		cfg    skinvault.Config
	)

	// The roster is validated in full before any command may run; a
	// malformed table aborts the whole program.
	app.Before = func(c *cli.Context) error {
		var err error
		if cfg, err = skinvault.LoadConfig(c.String("config")); err != nil {
			return cli.Exit(err, 1)
		}
		if roster, err = skinvault.LoadRoster(); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	}

	newVault := func(c *cli.Context) *skinvault.SkinVault {
		return skinvault.New(roster, cfg.BackupWindow(), newLogger(c.Bool("verbose")))
	}

	libraryPath := func(c *cli.Context) string {
		if p := c.String("db"); p != "" {
			return p
		}
		if cfg.Library != "" {
			return cfg.Library
		}
		return defaultLibrary
	}

	app.Commands = []*cli.Command{
		{
			Name:      "export",
			Usage:     "Export a palette slot from the save file to a skin file",
			ArgsUsage: "SAVE CHARACTER SLOT SKIN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 4 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				slot, err := parseSlot(c.Args().Get(2))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := newVault(c).Export(c.Args().Get(0), strings.ToLower(c.Args().Get(1)), slot, c.Args().Get(3)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import a skin file into a palette slot of the save file",
			ArgsUsage: "SAVE CHARACTER SLOT SKIN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 4 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				slot, err := parseSlot(c.Args().Get(2))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := newVault(c).Import(c.Args().Get(0), strings.ToLower(c.Args().Get(1)), slot, c.Args().Get(3)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Render a skin file as a PNG swatch strip",
			ArgsUsage: "SKIN PNG",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := skin.PreviewFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "convert",
			Usage:     "Derive a skin file from an image",
			ArgsUsage: "IMAGE SKIN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := skin.ConvertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "stash",
			Usage:     "Store a skin file in the library under a name",
			ArgsUsage: "NAME SKIN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, err := skin.ReadFile(c.Args().Get(1))
				if err != nil {
					return cli.Exit(err, 1)
				}

				lib, err := skinvault.OpenLibrary(libraryPath(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer lib.Close()

				if err := lib.Stash(c.Args().Get(0), p); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "fetch",
			Usage:     "Write a stashed skin out as a skin file",
			ArgsUsage: "NAME SKIN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				lib, err := skinvault.OpenLibrary(libraryPath(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer lib.Close()

				p, err := lib.Fetch(c.Args().Get(0))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := skin.WriteFile(c.Args().Get(1), p); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List stashed skins",
			Action: func(c *cli.Context) error {
				lib, err := skinvault.OpenLibrary(libraryPath(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer lib.Close()

				entries, err := lib.List()
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("%-24s %v %s\n", e.Name, []byte(e.Palette), e.Created.Format(time.RFC3339))
				}

				return nil
			},
		},
		{
			Name:      "rm",
			Usage:     "Remove a stashed skin",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				lib, err := skinvault.OpenLibrary(libraryPath(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer lib.Close()

				if err := lib.Remove(c.Args().Get(0)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "characters",
			Usage: "List the characters the save file layout knows about",
			Action: func(c *cli.Context) error {
				for _, ch := range roster.Characters() {
					if !ch.Present {
						continue
					}
					fmt.Printf("%-12s slots 1-5 at %#06x\n", ch.Name, ch.Offset)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger := newLogger(false)
		logger.Fatal().Err(err).Msg("command failed")
	}
}
