package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/pipeline"
	"github.com/matzehuels/termplot/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path, stdout when empty
	format  string // scene format for stdin input
	refresh bool   // ignore cached output
	stats   bool   // print render statistics to stderr
}

// renderCommand creates the render command. Size, color and cache flags
// come from the layered config.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file | -]",
		Short: "Render a scene file to the terminal",
		Long: `Render a TOML or JSON scene file as styled terminal text.

Use "-" to read the scene from stdin; --format selects its encoding.`,
		Example: `  termplot render status.toml
  termplot render --width 160 --no-color plot.json > plot.txt
  cat scene.toml | termplot render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd, args[0], opts)
		},
	}

	addRenderFlags(cmd)
	cmd.Flags().Bool(keyNoCache, false, "disable the render cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", string(scene.FormatTOML), "scene format for stdin: toml, json")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print render statistics to stderr")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input string, opts renderOpts) error {
	if opts.refresh && c.config.noCache() {
		printWarning(cmd.ErrOrStderr(), "--refresh has no effect with --no-cache")
	}
	runner, err := c.newRunner(c.config.noCache())
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Width:   c.config.width(),
		Height:  c.config.height(),
		Plain:   c.config.plain(),
		Refresh: opts.refresh,
	}

	var res *pipeline.Result
	if input == "-" {
		res, err = renderStdin(ctx, runner, cmd.InOrStdin(), opts.format, popts)
	} else {
		res, err = runner.Execute(ctx, input, popts)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, res.Output); err != nil {
		return err
	}
	if opts.stats {
		stderr := cmd.ErrOrStderr()
		if res.Title != "" {
			printKeyValue(stderr, "title", res.Title)
		}
		printStats(stderr, res.Stats.Rows, fmt.Sprintf("%dx%d dots", res.Width, res.Height), res.Cached)
	}
	if opts.output != "" {
		printSuccess(cmd.ErrOrStderr(), "Wrote %s", opts.output)
	}
	return nil
}

func renderStdin(ctx context.Context, runner *pipeline.Runner, r io.Reader, format string, opts pipeline.Options) (*pipeline.Result, error) {
	f, err := scene.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(r, pipeline.MaxSceneBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
	}
	s, err := runner.Decode(ctx, data, f)
	if err != nil {
		return nil, err
	}
	return runner.RenderScene(ctx, s, opts)
}

// writeOutput prints out to stdout, or to path when one is given.
func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}
