package fan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/internal/ui"
)

var (
	watchSamples  int
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sample speed and temperature of a fan and plot them",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchSamples <= 1 {
			return fmt.Errorf("at least 2 samples are required")
		}

		device, err := openFanDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		var speeds, temps []float64
		tick := time.NewTicker(watchInterval)
		defer tick.Stop()

	loop:
		for len(speeds) < watchSamples {
			speed, err := device.GetFanSpeedPercent(fanIndex)
			if err != nil {
				return err
			}
			temp, err := device.GetFanTemperature(fanIndex)
			if err != nil {
				ui.Debug("No temperature for fan %d: %v", fanIndex, err)
			}
			speeds = append(speeds, float64(speed))
			temps = append(temps, float64(temp))
			ui.Printfln("%3d/%d  speed: %3d%%  temp: %3d°C", len(speeds), watchSamples, speed, temp)

			select {
			case <-ctx.Done():
				break loop
			case <-tick.C:
			}
		}

		if len(speeds) < 2 {
			return nil
		}

		graph := asciigraph.PlotMany(
			[][]float64{speeds, temps},
			asciigraph.Height(15),
			asciigraph.Width(100),
			asciigraph.Caption(fmt.Sprintf("Fan %d: speed %% / temperature °C", fanIndex)),
		)
		ui.Printfln("")
		ui.Printfln("%s", graph)
		return nil
	},
}

func init() {
	watchCmd.Flags().IntVarP(&watchSamples, "samples", "n", 30, "Number of samples to take")
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "d", time.Second, "Time between two samples")
	Command.AddCommand(watchCmd)
}
