package service

import (
	"context"
	"fmt"
	"time"

	"countrymap/internal/models"
	"countrymap/internal/render"

	"github.com/rs/zerolog/log"
)

// Resolver turns a coordinate into a country code
type Resolver interface {
	ResolveCountryCode(ctx context.Context, lat, lon float64) (models.CountryCode, error)
}

// Fetcher returns the country record for a code
type Fetcher interface {
	FetchCountry(ctx context.Context, code models.CountryCode) (*models.CountryRecord, error)
}

// Selection is the single slot holding the most recently clicked country
type Selection interface {
	Set(record models.CountryRecord)
}

// LookupJournal records each click for diagnostics. It is never read by the pipeline.
type LookupJournal interface {
	RecordLookup(ctx context.Context, lookup models.Lookup) error
}

// ClickResult is everything the map page needs after a successful click.
type ClickResult struct {
	Coordinate  models.Coordinate    `json:"coordinate"`
	CountryCode models.CountryCode   `json:"country_code"`
	Country     models.CountryRecord `json:"country"`
	Popup       render.PopupView     `json:"popup"`
	PopupHTML   string               `json:"popup_html"`
	PanelHTML   string               `json:"panel_html"`
}

// ClickService runs the click pipeline: resolve, fetch, select, render.
type ClickService struct {
	resolver  Resolver
	fetcher   Fetcher
	selection Selection
	journal   LookupJournal
	now       func() time.Time

	renderPopup func(models.CountryRecord, models.Coordinate) (string, error)
	renderPanel func(*models.CountryRecord) (string, error)
}

// NewClickService wires the pipeline stages. journal may be nil.
func NewClickService(resolver Resolver, fetcher Fetcher, selection Selection, journal LookupJournal) *ClickService {
	return &ClickService{
		resolver:  resolver,
		fetcher:   fetcher,
		selection: selection,
		journal:   journal,
		now:       time.Now,

		renderPopup: render.Popup,
		renderPanel: render.Panel,
	}
}

// Click resolves the country at coordinate and makes it the selected country.
// The two upstream calls run in order; a failed resolution never reaches the
// fetcher. On any failure the selection is left untouched and the error wraps
// ErrResolutionFailed, ErrFetchFailed or ErrRenderFailed.
func (s *ClickService) Click(ctx context.Context, coordinate models.Coordinate) (*ClickResult, error) {
	code, err := s.resolver.ResolveCountryCode(ctx, coordinate.Lat, coordinate.Lon)
	if err != nil {
		log.Warn().Err(err).
			Float64("lat", coordinate.Lat).
			Float64("lon", coordinate.Lon).
			Msg("error getting country code from coordinates")
		s.record(ctx, coordinate, "", nil, models.OutcomeResolutionFailed)
		return nil, err
	}

	record, err := s.fetcher.FetchCountry(ctx, code)
	if err != nil {
		log.Warn().Err(err).
			Float64("lat", coordinate.Lat).
			Float64("lon", coordinate.Lon).
			Str("code", code.String()).
			Msg("error fetching country details")
		s.record(ctx, coordinate, code, nil, models.OutcomeFetchFailed)
		return nil, err
	}

	popupHTML, err := s.renderPopup(*record, coordinate)
	if err != nil {
		return nil, s.renderFailed(ctx, coordinate, code, record, err)
	}
	panelHTML, err := s.renderPanel(record)
	if err != nil {
		return nil, s.renderFailed(ctx, coordinate, code, record, err)
	}

	s.selection.Set(*record)
	s.record(ctx, coordinate, code, record, models.OutcomeResolved)

	log.Debug().
		Float64("lat", coordinate.Lat).
		Float64("lon", coordinate.Lon).
		Str("code", code.String()).
		Str("country", record.Name.Common).
		Msg("country selected")

	return &ClickResult{
		Coordinate:  coordinate,
		CountryCode: code,
		Country:     *record,
		Popup:       render.NewPopupView(*record, coordinate),
		PopupHTML:   popupHTML,
		PanelHTML:   panelHTML,
	}, nil
}

func (s *ClickService) renderFailed(ctx context.Context, coordinate models.Coordinate, code models.CountryCode, record *models.CountryRecord, cause error) error {
	err := fmt.Errorf("service: %w: %w", ErrRenderFailed, cause)
	log.Error().Err(err).
		Str("code", code.String()).
		Msg("error rendering country details")
	s.record(ctx, coordinate, code, record, models.OutcomeRenderFailed)
	return err
}

func (s *ClickService) record(ctx context.Context, coordinate models.Coordinate, code models.CountryCode, record *models.CountryRecord, outcome models.LookupOutcome) {
	if s.journal == nil {
		return
	}

	lookup := models.Lookup{
		Latitude:    coordinate.Lat,
		Longitude:   coordinate.Lon,
		CountryCode: code.String(),
		Outcome:     outcome,
		CreatedAt:   s.now().UTC(),
	}
	if record != nil {
		lookup.CountryName = record.Name.Common
	}

	// The journal outlives a disconnected browser.
	if err := s.journal.RecordLookup(context.WithoutCancel(ctx), lookup); err != nil {
		log.Error().Err(err).Str("outcome", string(outcome)).Msg("failed to record lookup")
	}
}
