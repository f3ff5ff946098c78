package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fleetsight/fleetsight/internal/analytics"
	"github.com/fleetsight/fleetsight/internal/loader"
)

var (
	statsVehicle string
	statsRoute   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print trip statistics for the loaded workbooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dataset, err := loader.LoadAll(ctx, cfg.Data.FleetPath, cfg.Data.ClosurePath, loader.Options{
			SheetName: cfg.Data.SheetName,
		})
		if err != nil {
			return err
		}

		trips := analytics.Filter(dataset.Trips, statsVehicle, statsRoute)
		stats := analytics.BuildTripStats(trips)
		rollup := analytics.Summarize(trips)

		fmt.Println("Day  Total  Ongoing  Completed")
		for d := 0; d < analytics.DaysInSeries; d++ {
			if stats.Total[d] == 0 && stats.Ongoing[d] == 0 && stats.Closed[d] == 0 {
				continue
			}
			fmt.Printf("%3d  %5d  %7d  %9d\n", d+1, stats.Total[d], stats.Ongoing[d], stats.Closed[d])
		}
		fmt.Printf("Trips: %d (ongoing %d, completed %d)\n", stats.TotalSum, stats.OngoingSum, stats.ClosedSum)
		fmt.Printf("Revenue: ₹%.2f\n", rollup.Revenue)
		fmt.Printf("Expense: ₹%.2f\n", rollup.Expense)
		fmt.Printf("Profit: ₹%.2f (%.1f%%)\n", rollup.Profit, rollup.ProfitPct)
		fmt.Printf("Distance: %.1f KM (₹%.2f per KM)\n", rollup.DistanceKM, rollup.ProfitPerKM)

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsVehicle, "vehicle", "", "filter by vehicle id")
	statsCmd.Flags().StringVar(&statsRoute, "route", "", "filter by route")
	rootCmd.AddCommand(statsCmd)
}
