package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/logger"
)

// Runner scrapes symbols in order and hands the records to emit.
type Runner interface {
	Run(
		ctx context.Context,
		symbols []string,
		emit func(*dividendscrape.StockRecord) error,
	) error
	Errs() []error
}

type Command struct {
	opts options
}

func NewCommand(os ...Option) *Command {
	opts := defaultOptions
	for _, o := range os {
		opts = o(opts)
	}

	return &Command{
		opts: opts,
	}
}

var _ dividendscrape.Command = (*Command)(nil)

// Execute scrapes the symbol given with the Stock option, or the symbols
// of the StockList file when no single symbol is set, and writes a line
// per record.
func (c *Command) Execute(ctx context.Context) error {
	symbols, err := c.symbols()
	if err != nil {
		return err
	}
	if len(symbols) == 0 {
		return nil
	}
	if c.opts.runner == nil {
		return fmt.Errorf("runner must be specified")
	}

	w := bufio.NewWriter(c.writer())
	err = c.opts.runner.Run(
		ctx,
		symbols,
		func(rec *dividendscrape.StockRecord) error {
			if err := dividendscrape.WriteRecord(w, rec); err != nil {
				return err
			}
			return w.Flush()
		},
	)
	if err != nil {
		return err
	}

	if errs := c.opts.runner.Errs(); len(errs) > 0 {
		logger.Debug(ctx, "symbols failed",
			zap.Int("failed", len(errs)),
			zap.Int("total", len(symbols)),
			zap.Errors("errors", errs),
		)
	}
	return nil
}

func (c *Command) writer() io.Writer {
	if c.opts.writer != nil {
		return c.opts.writer
	}
	return io.Discard
}

func (c *Command) symbols() ([]string, error) {
	if c.opts.stock != "" {
		return []string{c.opts.stock}, nil
	}
	if c.opts.stockList == "" {
		return nil, nil
	}

	f, err := os.Open(c.opts.stockList)
	if err != nil {
		return nil, fmt.Errorf("open stock list: %w", err)
	}
	defer f.Close()

	return readSymbols(f)
}

// readSymbols returns the lines of r in order, blank lines left out.
func readSymbols(r io.Reader) ([]string, error) {
	symbols := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if s == "" {
			continue
		}
		symbols = append(symbols, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stock list: %w", err)
	}
	return symbols, nil
}

var defaultOptions = options{
	writer: nil,
}

type options struct {
	writer    io.Writer
	runner    Runner
	stock     string
	stockList string
}

type Option func(o options) options

func Writer(v io.Writer) Option {
	return func(o options) options {
		o.writer = v
		return o
	}
}

func Scraper(v Runner) Option {
	return func(o options) options {
		o.runner = v
		return o
	}
}

// Stock sets a single symbol. It wins over StockList.
func Stock(v string) Option {
	return func(o options) options {
		o.stock = strings.TrimSpace(v)
		return o
	}
}

// StockList sets a file of newline separated symbols.
func StockList(v string) Option {
	return func(o options) options {
		o.stockList = v
		return o
	}
}
