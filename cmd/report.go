package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fleetsight/fleetsight/internal/analytics"
	"github.com/fleetsight/fleetsight/internal/loader"
)

var (
	reportVehicle string
	reportRoute   string
	reportOut     string
	reportFormat  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the narrative trip report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dataset, err := loader.LoadAll(ctx, cfg.Data.FleetPath, cfg.Data.ClosurePath, loader.Options{
			SheetName: cfg.Data.SheetName,
		})
		if err != nil {
			return err
		}

		trips := analytics.Filter(dataset.Trips, reportVehicle, reportRoute)
		doc := analytics.BuildReport(trips)

		var out []byte
		switch reportFormat {
		case "text":
			out = []byte(doc.Text)
		case "yaml":
			out, err = yaml.Marshal(doc)
			if err != nil {
				return eris.Wrap(err, "report: marshal yaml")
			}
		default:
			return eris.Errorf("report: unknown format %q (want text or yaml)", reportFormat)
		}

		path := reportOut
		if path == "" {
			path = cfg.Report.OutputPath
		}
		if path == "-" {
			fmt.Print(string(out))
			return nil
		}

		if err := os.WriteFile(path, out, 0o644); err != nil {
			return eris.Wrapf(err, "report: write %s", path)
		}
		zap.L().Info("report written", zap.String("path", path), zap.Int("trips", doc.TotalTrips))

		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportVehicle, "vehicle", "", "filter by vehicle id")
	reportCmd.Flags().StringVar(&reportRoute, "route", "", "filter by route")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output path (default from config, - for stdout)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(reportCmd)
}
