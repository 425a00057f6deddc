package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"menuboard/internal/export"
	"menuboard/internal/menu"
	"menuboard/internal/schedule"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <menu.json>",
	Short: "Write an Excel overview of weekly hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "hours.xlsx", "output file")
}

func runExport(_ *cobra.Command, args []string) error {
	doc, err := menu.Load(args[0])
	if err != nil {
		return err
	}

	writer := export.NewExcelizeWriter()
	defer writer.Close()

	if err := export.Overview(writer, doc, labels(), schedule.At(time.Now())); err != nil {
		return fmt.Errorf("build overview: %w", err)
	}
	if err := writer.SaveToFile(exportOut); err != nil {
		return fmt.Errorf("save %s: %w", exportOut, err)
	}

	logger.Info().Str("file", exportOut).Msg("hours overview written")
	return nil
}
