package main

import (
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/internal/export"
	"github.com/dkerobean/WoocommerceOrders/internal/sync"
	"github.com/dkerobean/WoocommerceOrders/internal/telegram"
	"github.com/dkerobean/WoocommerceOrders/internal/version"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

func main() {
	code := 0
	cmd := newRootCmd(&code)
	if err := cmd.Execute(); err != nil {
		if code == 0 {
			code = sync.ExitConfig
		}
	}
	os.Exit(code)
}

func newRootCmd(code *int) *cobra.Command {
	var configPath, date string

	cmd := &cobra.Command{
		Use:           "woocommerce-orders",
		Short:         "Export the day's new WooCommerce orders to the partner files",
		Version:       version.GetVersion().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = run(configPath, date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to config.ini")
	cmd.Flags().StringVarP(&date, "date", "d", "", "day to export, e.g. 2024-03-05 (default today in the store timezone)")
	return cmd
}

func run(configPath, date string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.New(os.Stderr, false).Errorf("%v", err)
		return sync.ExitConfig
	}

	logger, err := logging.Init(cfg.LOG.Dir, cfg.LOG.Debug == 1)
	if err != nil {
		logger.Errorf("failed open log dir %s, logging to stdout only: %v", cfg.LOG.Dir, err)
	}
	logger.Info("Start Main")
	defer logger.Info("End Main")
	logger.Infof("Version %s", version.GetVersion().String())

	day, err := parseDay(date, cfg.Location())
	if err != nil {
		logger.Errorf("%v", err)
		return sync.ExitConfig
	}

	writers, err := export.NewWriters(cfg, logger)
	if err != nil {
		logger.Errorf("%v", err)
		return sync.ExitConfig
	}

	c := sync.NewCoordinator(cfg, wooapi.NewAPI(cfg, logger), writers, telegram.NewFromConfig(cfg, logger), logger)
	report := c.Run(day)
	for _, f := range report.Failures {
		logger.Errorf("%s", f)
	}
	return report.ExitCode()
}

func parseDay(date string, loc *time.Location) (time.Time, error) {
	if date == "" {
		return time.Now().In(loc), nil
	}
	day, err := dateparse.ParseIn(date, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed parse --date %q", date)
	}
	return day, nil
}
