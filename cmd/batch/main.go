package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"countrymap/internal/client"
	"countrymap/internal/config"
	"countrymap/internal/logger"
	"countrymap/internal/models"
	"countrymap/internal/repository"
	"countrymap/internal/selection"
	"countrymap/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type options struct {
	file      string
	configDir string
	journal   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Resolve the country at each coordinate of a CSV file",
		Long: `
batch runs the map click pipeline for every lat,lon row of a CSV file and
prints the resolved country, one row per coordinate. Rows are processed one
at a time; a failed row is reported and the run continues.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the CSV file with a lat,lon header")
	cmd.Flags().StringVar(&opts.configDir, "config", "configs", "Directory containing app.env")
	cmd.Flags().BoolVar(&opts.journal, "journal", false, "Record every lookup in the DB_SOURCE journal")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBatch(ctx context.Context, opts options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	coordinates, err := parseCSV(opts.file)
	if err != nil {
		return fmt.Errorf("error parsing CSV: %w", err)
	}
	log.Info().Str("file", opts.file).Int("rows", len(coordinates)).Msg("parsed coordinates")

	var journal service.LookupJournal
	var repo *repository.Repository
	if opts.journal {
		if !cfg.JournalEnabled() {
			return errors.New("--journal requires DB_SOURCE to be configured")
		}
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		defer conn.Close()

		repo = repository.NewRepository(conn)
		if err := repo.CreateSchema(ctx); err != nil {
			return err
		}
		journal = repo
	}

	var before int
	if repo != nil {
		if before, err = repo.CountLookups(ctx); err != nil {
			return err
		}
	}

	httpClient := client.NewHTTPClient(cfg.HTTPClientTimeout, cfg.UserAgent)
	clickService := service.NewClickService(
		service.NewReverseGeoCodeService(client.NewNominatimClient(httpClient, cfg.NominatimURL)),
		service.NewCountryService(client.NewRestCountriesClient(httpClient, cfg.RestCountriesURL)),
		selection.NewCell(),
		journal,
	)

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(coordinates),
			progressbar.OptionSetDescription("Resolving coordinates"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	summary, err := processCoordinates(ctx, clickService, coordinates, out, bar)
	if err != nil {
		return err
	}

	if repo != nil {
		if err := verifyJournal(ctx, repo, before, len(coordinates)); err != nil {
			return err
		}
	}

	log.Info().
		Int("resolved", summary.Resolved).
		Int("failed", summary.Failed).
		Msg("batch complete")
	return nil
}

// Clicker runs the click pipeline for one coordinate.
type Clicker interface {
	Click(ctx context.Context, coordinate models.Coordinate) (*service.ClickResult, error)
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Resolved int
	Failed   int
}

// processCoordinates clicks each coordinate in order and writes one CSV row per
// result. Every row is flushed as soon as it is written, so an interrupted run
// keeps the rows it already processed.
func processCoordinates(ctx context.Context, clicker Clicker, coordinates []models.Coordinate, out io.Writer, bar *progressbar.ProgressBar) (Summary, error) {
	w := csv.NewWriter(out)
	if err := writeRow(w, []string{"lat", "lon", "outcome", "country_code", "country", "capital"}); err != nil {
		return Summary{}, fmt.Errorf("failed to write header: %w", err)
	}

	var summary Summary
	for _, coordinate := range coordinates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		row := []string{coordinate.LatString(), coordinate.LonString()}
		result, err := clicker.Click(ctx, coordinate)
		switch {
		case errors.Is(err, service.ErrResolutionFailed):
			summary.Failed++
			row = append(row, string(models.OutcomeResolutionFailed), "", "", "")
		case errors.Is(err, service.ErrRenderFailed):
			summary.Failed++
			row = append(row, string(models.OutcomeRenderFailed), "", "", "")
		case err != nil:
			summary.Failed++
			row = append(row, string(models.OutcomeFetchFailed), "", "", "")
		default:
			summary.Resolved++
			row = append(row,
				string(models.OutcomeResolved),
				result.CountryCode.String(),
				result.Country.CommonName(),
				result.Country.FirstCapital(),
			)
		}

		if err := writeRow(w, row); err != nil {
			return summary, fmt.Errorf("failed to write row: %w", err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return summary, nil
}

func writeRow(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func parseCSV(filePath string) ([]models.Coordinate, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readCoordinates(file)
}

func readCoordinates(r io.Reader) ([]models.Coordinate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var coordinates []models.Coordinate
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least 2 columns", line, len(record))
		}

		lat, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[0])
		}

		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			line, _ = reader.FieldPos(1)
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[1])
		}

		coordinates = append(coordinates, models.Coordinate{Lat: lat, Lon: lon})
	}

	return coordinates, nil
}

type lookupCounter interface {
	CountLookups(ctx context.Context) (int, error)
}

// verifyJournal checks that every processed row reached the journal.
func verifyJournal(ctx context.Context, repo lookupCounter, before, processed int) error {
	after, err := repo.CountLookups(ctx)
	if err != nil {
		return err
	}

	if after-before != processed {
		return fmt.Errorf("journal count mismatch: expected %d new rows, got %d", processed, after-before)
	}
	return nil
}
