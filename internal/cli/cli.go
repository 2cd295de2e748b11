// Package cli builds the edwina command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/glencjones/edwina/internal/layout"
	"github.com/glencjones/edwina/internal/tui"
)

// New assembles the root command. Output goes to out; pass os.Stdout from
// main.
func New(version string, out io.Writer) *cli.Command {
	if out == nil {
		out = os.Stdout
	}
	return &cli.Command{
		Name:    "edwina",
		Usage:   "dynamic master/stack tiling for terminal panes",
		Version: version,
		Commands: []*cli.Command{
			demoCommand(),
			previewCommand(out),
			layoutsCommand(out),
			versionCommand(version, out),
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run the interactive tiling demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path (defaults to the user config dir)",
			},
			&cli.IntFlag{
				Name:  "panes",
				Usage: "number of panes to open at start",
				Value: 3,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, path, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			return tui.RunDemo(tui.DemoOptions{
				Config:     cfg,
				ConfigPath: path,
				PaneCount:  cmd.Int("panes"),
			})
		},
	}
}

func previewCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "print a one-shot rendering of the computed layout",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "panes", Usage: "pane count", Value: 3},
			&cli.IntFlag{Name: "width", Usage: "frame width", Value: 160},
			&cli.IntFlag{Name: "height", Usage: "frame height", Value: 45},
			&cli.IntFlag{Name: "nmaster", Usage: "master pane count", Value: layout.DefaultNMaster},
			&cli.FloatFlag{Name: "mfact", Usage: "master area share", Value: layout.DefaultMFact},
			&cli.StringFlag{Name: "layout", Usage: "layout name", Value: "tall"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPreview(cmd, out)
		},
	}
}

func runPreview(cmd *cli.Command, out io.Writer) error {
	count := cmd.Int("panes")
	if count <= 0 {
		return errors.New("preview needs at least one pane")
	}
	params := layout.DefaultParams()
	params.NMaster = cmd.Int("nmaster")
	params.MFact = cmd.Float("mfact")
	if err := params.Validate(); err != nil {
		return err
	}
	fn, ok := layout.ByName(cmd.String("layout"))
	if !ok {
		return fmt.Errorf("unknown layout %q (have %s)", cmd.String("layout"), strings.Join(layout.Names(), ", "))
	}

	panes := make([]string, count)
	titles := make(map[string]string, count)
	for i := range panes {
		panes[i] = fmt.Sprintf("pane-%d", i+1)
		titles[panes[i]] = panes[i]
	}
	frame := layout.Rect{W: cmd.Int("width"), H: cmd.Int("height")}
	regions, err := fn(panes, frame, params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tui.RenderFrame(regions, frame.W, frame.H, panes[0], titles))
	return err
}

func layoutsCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "layouts",
		Usage: "list available layouts",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range layout.Names() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCommand(version string, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the edwina version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(out, "edwina %s\n", version)
			return err
		},
	}
}

// loadConfig resolves and reads the config file. A missing file is not an
// error; the defaults apply and the path is still returned so the demo can
// pick the file up once it appears.
func loadConfig(override string) (*layout.Config, string, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		resolved, err := layout.DefaultConfigPath()
		if err != nil {
			return nil, "", err
		}
		path = resolved
	}
	cfg, err := layout.LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, path, nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}
