package tdp

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

var Command = &cobra.Command{
	Use:              "tdp",
	Short:            "Thermal design power related commands",
	Long:             `Prints the TDP limits of the device`,
	Args:             cobra.NoArgs,
	TraverseChildren: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		count, err := device.TdpCount()
		if err != nil {
			return err
		}
		descriptors, err := device.TdpDescriptors()
		if err != nil {
			return err
		}
		for index := 0; index < count; index++ {
			minValue, err := device.TdpMin(index)
			if err != nil {
				return err
			}
			maxValue, err := device.TdpMax(index)
			if err != nil {
				return err
			}
			label := ""
			if index < len(descriptors) {
				label = descriptors[index]
			}
			ui.Printfln("%d %s [%d..%d]", index, label, minValue, maxValue)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Get the current value of a TDP limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %s: %w", args[0], hal.ErrInvalidArguments)
		}

		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		value, err := device.GetTdp(index)
		if err != nil {
			return err
		}
		ui.Printfln("%d", value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <index> <value>",
	Short: "Set the value of a TDP limit",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %s: %w", args[0], hal.ErrInvalidArguments)
		}
		value, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return fmt.Errorf("value %s: %w", args[1], hal.ErrInvalidArguments)
		}

		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		return device.SetTdp(index, uint8(value))
	},
}

func init() {
	Command.AddCommand(getCmd)
	Command.AddCommand(setCmd)
}
