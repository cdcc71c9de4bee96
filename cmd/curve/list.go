package curve

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/curves"
	"github.com/uw2go/uw2go/internal/ui"
)

var curveCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured fan curve(s) to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		global.LoadConfig()

		err = configuration.Validate()
		if err != nil {
			ui.Fatal(err.Error())
		}

		curveConfigs := configuration.CurrentConfig.Curves
		if curveId != "" {
			curveConf, err := getCurveConfig(curveId, curveConfigs)
			if err != nil {
				return err
			}
			curveConfigs = []configuration.CurveConfig{*curveConf}
		}

		for idx, curveConf := range curveConfigs {
			if idx > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}

			curve, err := curves.NewSpeedCurve(curveConf)
			if err != nil {
				return err
			}

			temps := make([]int, 0, len(curveConf.Steps))
			for temp := range curveConf.Steps {
				temps = append(temps, temp)
			}
			sort.Ints(temps)

			rows := make([][]string, 0, len(temps))
			for _, temp := range temps {
				rows = append(rows, []string{fmt.Sprintf("%d°C", temp), fmt.Sprintf("%d%%", curveConf.Steps[temp])})
			}

			// print table
			tab := table.Table{
				Headers: []string{curve.GetId(), "Speed"},
				Rows:    rows,
			}
			var buf bytes.Buffer
			tableErr := tab.WriteTable(&buf, &table.Config{
				ShowIndex:       false,
				Color:           !global.NoColor,
				AlternateColors: true,
				TitleColorCode:  ansi.ColorCode("white+buf"),
				AltColorCodes: []string{
					ansi.ColorCode("white"),
					ansi.ColorCode("white:236"),
				},
			})
			if tableErr != nil {
				return tableErr
			}
			ui.Printfln("%s", buf.String())

			start := temps[0]
			stop := temps[len(temps)-1]
			if start == stop {
				continue
			}

			values := make([]float64, 0, stop-start+1)
			for temp := start; temp <= stop; temp++ {
				value, err := curve.Evaluate(float64(temp))
				if err != nil {
					return err
				}
				values = append(values, float64(value))
			}

			caption := fmt.Sprintf("Speed %% / Temperature %d..%d°C", start, stop)
			graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
			ui.Printfln("%s", graph)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(curveCmd)
}
