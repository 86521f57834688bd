package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nvdocs"
	"github.com/fwojciec/nvdocs/docs"
	"github.com/fwojciec/nvdocs/fs"
	"github.com/fwojciec/nvdocs/goquery"
	"github.com/fwojciec/nvdocs/htmltomarkdown"
	nvhttp "github.com/fwojciec/nvdocs/http"
	"github.com/fwojciec/nvdocs/readability"
	nvslog "github.com/fwojciec/nvdocs/slog"
	"github.com/fwojciec/nvdocs/trafilatura"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache directory. Set before calling Run().
	CacheDir string

	// Services for end-to-end testing.
	Registry *nvdocs.Registry
	Docs     nvdocs.DocService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nvdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nvdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.CacheDir != "" {
		m.CacheDir = cli.CacheDir
	}

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	fetcher := nvhttp.NewFetcher(nvhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	// Wire core services into dependencies
	var docFetcher nvdocs.Fetcher = fetcher
	var cache nvdocs.DocumentCache = fs.NewCache(m.CacheDir)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		docFetcher = nvslog.NewLoggingFetcher(docFetcher, logger)
		cache = nvslog.NewLoggingCache(cache, logger)
	}

	m.Registry = nvdocs.DefaultRegistry()
	m.Docs = &docs.Service{
		Registry:  m.Registry,
		Fetcher:   docFetcher,
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
		Cache:     cache,
	}

	deps.Registry = m.Registry
	deps.Docs = m.Docs
	deps.CacheDir = m.CacheDir

	return kongCtx.Run(deps)
}

// newExtractor returns the content extraction engine selected by name.
func newExtractor(name string) (nvdocs.Extractor, error) {
	switch name {
	case "selector":
		return goquery.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	default:
		return nil, nvdocs.Errorf(nvdocs.EINVALID, "unknown extractor %q", name)
	}
}

func defaultCacheDir() string {
	if dir := os.Getenv("NVDOCS_CACHE_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".nvdocs-cache"
	}
	return filepath.Join(base, "nvdocs")
}
