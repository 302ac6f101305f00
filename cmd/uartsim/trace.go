package main

import (
	"fmt"

	"github.com/serialab/uartsim/datarecording"
	"github.com/serialab/uartsim/tracing"
	"github.com/spf13/cobra"
)

var (
	traceLines bool
	traceLimit int
)

var traceCmd = &cobra.Command{
	Use:   "trace <database>",
	Short: "Print the frames recorded in a trace database.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().BoolVar(&traceLines, "lines", false,
		"also print the line transitions")
	traceCmd.Flags().IntVar(&traceLimit, "limit", 0,
		"maximum number of records to print per table, 0 for all")
}

func runTrace(_ *cobra.Command, args []string) error {
	reader := datarecording.NewDataReader(args[0])
	defer reader.Close()

	reader.MapTable(tracing.FrameTableName, tracing.FrameEvent{})
	reader.MapTable(tracing.LineTableName, tracing.LineSample{})

	params := datarecording.QueryParams{
		OrderBy: "Time",
		Limit:   traceLimit,
	}

	frames, total, err := reader.Query(tracing.FrameTableName, params)
	if err != nil {
		return err
	}

	fmt.Printf("%d frame events:\n", total)
	for _, entry := range frames {
		f := entry.(*tracing.FrameEvent)
		fmt.Printf("%.9f  %-8s %-4s 0x%02x\n",
			f.Time, f.Component, f.Direction, f.Value)
	}

	if !traceLines {
		return nil
	}

	samples, total, err := reader.Query(tracing.LineTableName, params)
	if err != nil {
		return err
	}

	fmt.Printf("%d line transitions:\n", total)
	for _, entry := range samples {
		s := entry.(*tracing.LineSample)
		level := 0
		if s.Level {
			level = 1
		}
		fmt.Printf("%.9f  %-8s -> %d\n", s.Time, s.Wire, level)
	}

	return nil
}
