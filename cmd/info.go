package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/uw2go/uw2go/cmd/global"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print information about the device",
	Long:  `Prints the identification and the capabilities negotiated with the device, as well as the current state of all fans`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := global.OpenDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		deviceTable := table.Table{
			Headers: []string{"Device", "Value"},
			Rows:    deviceRows(device),
		}
		fanTable := table.Table{
			Headers: []string{"Fans", "Index", "Speed", "Temperature"},
			Rows:    fanRows(device),
		}

		tables := []table.Table{deviceTable, fanTable}
		for idx, t := range tables {
			var buf bytes.Buffer
			tableErr := t.WriteTable(&buf, tableConfig)
			if tableErr != nil {
				return fmt.Errorf("error printing table: %w", tableErr)
			}
			tableString := buf.String()
			if idx < (len(tables) - 1) {
				ui.Printf(tableString)
			} else {
				ui.Printfln(tableString)
			}
		}
		return nil
	},
}

func deviceRows(device *hal.UniwillHardware) [][]string {
	model, err := device.ModelId()
	modelText := valueOrNA(model, err)

	version, err := device.ModuleVersion()
	versionText := valueOrNA(version, err)

	minSpeedText := "N/A"
	minSpeed, err := device.GetFansMinSpeed()
	if err == nil {
		minSpeedText = fmt.Sprintf("%d%% (raw %d)", hal.RawToPercent(int32(minSpeed)), minSpeed)
	}

	fansOffText := "N/A"
	fansOff, err := device.GetFansOffAvailable()
	if err == nil {
		fansOffText = strconv.FormatBool(fansOff)
	}

	profilesText := "N/A"
	profiles, err := device.AvailableProfiles()
	if err == nil {
		profilesText = fmt.Sprintf("%v", profiles)
	}

	return [][]string{
		{"Interface", device.InterfaceId()},
		{"Model", modelText},
		{"Module Version", versionText},
		{"Fan Count", strconv.Itoa(device.FanCount())},
		{"Min Fan Speed", minSpeedText},
		{"Fans Off Available", fansOffText},
		{"Profiles", profilesText},
	}
}

func fanRows(device *hal.UniwillHardware) [][]string {
	var rows [][]string
	for index := 0; index < device.FanCount(); index++ {
		speedText := "N/A"
		speed, err := device.GetFanSpeedPercent(index)
		if err == nil {
			speedText = fmt.Sprintf("%d%%", speed)
		}

		tempText := "N/A"
		temp, err := device.GetFanTemperature(index)
		if err == nil {
			tempText = fmt.Sprintf("%d°C", temp)
		}

		rows = append(rows, []string{"", strconv.Itoa(index), speedText, tempText})
	}
	return rows
}

func valueOrNA(value string, err error) string {
	if err != nil {
		return "N/A"
	}
	return value
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
