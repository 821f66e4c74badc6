package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/termplot/pkg/canvas"
	"github.com/matzehuels/termplot/pkg/pipeline"
)

type bannerOpts struct {
	color     string
	underline string // line style for a rule under the text, empty for none
	align     string
}

// bannerCommand draws its arguments with the bitmap glyph font.
func (c *CLI) bannerCommand() *cobra.Command {
	var opts bannerOpts

	cmd := &cobra.Command{
		Use:     "banner <text>...",
		Short:   "Draw text in large bitmap letters",
		Example: `  termplot banner --color orange --underline double DEPLOY OK`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildBanner(strings.Join(args, " "), opts)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(cmd.Context()))
			res, err := runner.RenderCanvas(cmd.Context(), tree, pipeline.Options{
				Width:  c.config.width(),
				Height: c.config.height(),
				Plain:  c.config.plain(),
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), "", res.Output)
		},
	}

	addRenderFlags(cmd)
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "letter color (name, palette index, #hex or rgb(r,g,b))")
	cmd.Flags().StringVar(&opts.underline, "underline", "", "draw a rule under the text: solid, bold, double, dashed")
	cmd.Flags().StringVar(&opts.align, "align", "center", "placement when stretched, e.g. topleft, bottomcenter")

	return cmd
}

func buildBanner(text string, opts bannerOpts) (canvas.Canvas, error) {
	align, err := canvas.ParseAlignment(opts.align)
	if err != nil {
		return nil, err
	}
	letters, err := canvas.NewLettering(text,
		canvas.WithColor(opts.color),
		canvas.WithAlignment(align))
	if err != nil {
		return nil, err
	}
	if opts.underline == "" {
		return letters, nil
	}

	ls, err := canvas.ParseLineStyle(opts.underline)
	if err != nil {
		return nil, err
	}
	rule, err := canvas.NewHorizontalLine(letters.Width(),
		canvas.WithLineStyle(ls),
		canvas.WithColor(opts.color))
	if err != nil {
		return nil, err
	}
	return canvas.NewColumn(letters, rule), nil
}
