// Package main is the command line entrypoint of the dividend scraper.
// It loads the configuration, sets up logging and wires the site client
// into the scraper.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/chrome"
	"szakszon.com/dividendscrape/cli"
	"szakszon.com/dividendscrape/config"
	"szakszon.com/dividendscrape/dividendcom"
	"szakszon.com/dividendscrape/extract"
	"szakszon.com/dividendscrape/logger"
	"szakszon.com/dividendscrape/scraper"
)

type flags struct {
	stock      string
	stockList  string
	verbose    bool
	configPath string
}

func newScraper(cfg *config.Config) *scraper.Scraper {
	dc := dividendcom.NewDividendCom(
		dividendcom.BaseURL(cfg.Dividend.BaseURL),
		dividendcom.UserAgent(cfg.HTTP.UserAgent),
		dividendcom.Timeout(cfg.HTTP.Timeout),
	)

	var fetcher dividendscrape.PageFetcher = dc.NewFetcher()
	if cfg.Browser.Enabled {
		fetcher = chrome.NewFetcher(
			chrome.Timeout(cfg.Browser.Timeout),
			chrome.UserAgent(cfg.HTTP.UserAgent),
		)
	}

	return scraper.NewScraper(
		scraper.Resolver(dc.NewResolver()),
		scraper.Fetcher(fetcher),
		scraper.Extractor(extract.NewExtractor()),
	)
}

func rootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "dividendscrape",
		Short:         "Print dividend data of stocks as tab separated lines",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}

			logger.Setup(cfg.Environment, f.verbose, cmd.OutOrStdout())
			defer func() { _ = logger.Get(cmd.Context()).Sync() }()

			logger.Debug(cmd.Context(), "config loaded",
				zap.String("environment", cfg.Environment),
				zap.String("baseURL", cfg.Dividend.BaseURL),
				zap.Bool("browser", cfg.Browser.Enabled),
			)

			c := cli.NewCommand(
				cli.Writer(cmd.OutOrStdout()),
				cli.Scraper(newScraper(cfg)),
				cli.Stock(f.stock),
				cli.StockList(f.stockList),
			)
			return c.Execute(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.stock, "stock", "s", "", "Scrape a single stock symbol")
	fs.StringVarP(&f.stockList, "stock-list", "S", "", "Scrape the symbols of a newline separated file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Print a line for every symbol that could not be found")
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file path")

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	err := rootCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
