package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termplot/pkg/style"
)

const swatch = "████"

var styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// colorsCommand lists the named color tokens with a swatch of each.
func (c *CLI) colorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors [filter]",
		Short: "List named colors",
		Long: `List every color name accepted by scene files and --color flags.
An optional filter keeps names containing it. Palette indices (0-255),
#hex and rgb(r,g,b) tokens are accepted as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			rows, err := colorRows(filter, c.config.plain())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				printInfo(cmd.ErrOrStderr(), "No colors match %q", filter)
				return nil
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "Swatch", "SGR").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 2 {
						return styleDim
					}
					return lipgloss.NewStyle()
				})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}

	cmd.Flags().Bool(keyNoColor, false, "list names without swatches")
	return cmd
}

// colorRows returns one table row per color name containing filter.
func colorRows(filter string, plain bool) ([][]string, error) {
	filter = strings.ToLower(filter)
	var rows [][]string
	for _, name := range style.Names() {
		if name == "reset" || !strings.Contains(name, filter) {
			continue
		}
		esc, err := style.Foreground(name)
		if err != nil {
			return nil, err
		}
		sample := ""
		if !plain {
			if sample, err = style.Styled(swatch, name, ""); err != nil {
				return nil, err
			}
		}
		rows = append(rows, []string{name, sample, strings.TrimSuffix(strings.TrimPrefix(esc, style.CSI), "m")})
	}
	return rows, nil
}
