// Command tempo renders temporal values from their raw numeric components,
// for debugging protocol traces and server output by hand.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theory/sqltemporal/temporal"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tempo",
		Short: "Inspect temporal values",
		Long:  "Render date, time, datetime, and duration values from their raw numeric components in canonical, diagnostic, and raw form.",
	}

	rootCmd.AddCommand(dateCmd(), timeCmd(), dateTimeCmd(), durationCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <year> [month] [day]",
		Short: "Render a calendar date (month is zero-based)",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := intArgs(args, 1970, 0, 1)
			if err != nil {
				return err
			}
			d, err := temporal.NewLocalDate(f[0], f[1], f[2])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%#v\nordinal %d\n", d, d, d.Ordinal())
			return nil
		},
	}
}

func timeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time <hour> [minute] [second] [millisecond]",
		Short: "Render a wall-clock time of day",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := intArgs(args, 0, 0, 0, 0)
			if err != nil {
				return err
			}
			t, err := temporal.NewLocalTime(f[0], f[1], f[2], f[3])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%#v\n", t, t)
			return nil
		},
	}
}

func dateTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datetime <year> [month] [day] [hour] [minute] [second] [millisecond]",
		Short: "Render a date-time (month is zero-based)",
		Args:  cobra.RangeArgs(1, 7),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := intArgs(args, 1970, 0, 1, 0, 0, 0, 0)
			if err != nil {
				return err
			}
			dt, err := temporal.NewLocalDateTime(
				f[0], f[1], f[2], f[3], f[4], f[5], f[6],
			)
			if err != nil {
				return err
			}
			fmt.Printf(
				"%s\n%s\n%#v\ninstant %dms\n",
				dt, dt.PlainString(), dt, dt.UnixMilli(),
			)
			return nil
		},
	}
}

func durationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <months> <days> <milliseconds>",
		Short: "Render an interval from its three components",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := make([]int64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("argument %q is not an integer", arg)
				}
				f[i] = n
			}
			d := temporal.NewDuration(f[0], f[1], f[2])
			fmt.Printf("%s\n%#v\n", d, d)
			return nil
		},
	}
}

// intArgs parses args as integers over a full set of defaults, so trailing
// fields may be omitted.
func intArgs(args []string, defaults ...int) ([]int, error) {
	fields := make([]int, len(defaults))
	copy(fields, defaults)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not an integer", arg)
		}
		fields[i] = n
	}
	return fields, nil
}
