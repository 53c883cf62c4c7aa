package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"text/tabwriter"
	"time"
	"yenboard/internal/di"
	"yenboard/internal/structures"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:          "yenboard",
		Short:        "JPY exchange rate board",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := di.InitApp(flags)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/config.yml", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "also log to the console")

	root.AddCommand(newConvertCommand(flags))
	return root
}

func newConvertCommand(flags *structures.CliFlags) *cobra.Command {
	var amount int64
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Fetch the current rates once and print a conversion table",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := di.InitScreen(flags)
			if err != nil {
				return err
			}
			if err := screen.SetAmount(amount); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := screen.Load(ctx, false); err != nil {
				return err
			}

			view := screen.View(0, nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s  (updated %s, %s)\n\n", view.HeaderDate, view.AmountLabel, view.LastUpdatedClock, view.LastUpdatedText)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			for _, c := range view.Conversions {
				fmt.Fprintf(tw, "%s %s\t%s\t%s\t\n", c.Flag, c.Code, c.Name, c.Display)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int64VarP(&amount, "amount", "a", 10000, "JPY amount to convert")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "time limit for the rate fetch")
	return cmd
}
