package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/exp/slog"

	"github.com/ultrabanca/results-engine/internal/models"
	"github.com/ultrabanca/results-engine/internal/utils"
	"github.com/ultrabanca/results-engine/pkg/renderfetch"
	"github.com/ultrabanca/results-engine/pkg/webpage"
)

// Fetcher fetches a public page.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Renderer fetches a page through the paid headless renderer.
type Renderer interface {
	Render(ctx context.Context, url string) (*renderfetch.Page, error)
}

// Endpoints holds the base URLs of every result source.
type Endpoints struct {
	ResultadoFacil string
	PortalBrasil   string
	LookGoias      string
	HojeNoBicho    string
}

// Scraper walks the source chain for each house: the primary site over plain
// HTTP first, the backup site second, the paid renderer last.
type Scraper struct {
	fetcher   Fetcher
	renderer  Renderer
	endpoints Endpoints
	logger    *slog.Logger
}

// NewScraper creates a new scraper
func NewScraper(fetcher Fetcher, renderer Renderer, endpoints Endpoints, logger *slog.Logger) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		renderer:  renderer,
		endpoints: endpoints,
		logger:    logger,
	}
}

// Attempt outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// Attempt is one source try in a house's fallback chain. The trace lets the
// orchestrator see which sources misbehaved and where paid credits went.
type Attempt struct {
	Source  string `json:"source"`
	Outcome string `json:"outcome"`
}

// HouseResult is one house's scrape outcome. Attempts is populated even when
// the chain ends in failure.
type HouseResult struct {
	Drawings    []models.Drawing
	SourceUsed  string
	CreditsUsed int
	Attempts    []Attempt
}

func (r *HouseResult) record(source, outcome string) {
	r.Attempts = append(r.Attempts, Attempt{Source: source, Outcome: outcome})
}

func fetchOutcome(err error) string {
	if errors.Is(err, webpage.ErrRateLimited) {
		return OutcomeRateLimited
	}
	return OutcomeError
}

func (s *Scraper) primaryURL(hc HouseConfig, date string) string {
	if hc.CustomPath != "" {
		return s.endpoints.ResultadoFacil + strings.ReplaceAll(hc.CustomPath, "{date}", date)
	}
	return fmt.Sprintf("%s/resultado-do-jogo-do-bicho/%s/do-dia/%s", s.endpoints.ResultadoFacil, hc.URLParam, date)
}

func (s *Scraper) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML from %s: %w", url, err)
	}
	return doc, nil
}

// ScrapeHouse fetches one house's drawings for a date, walking the fallback
// chain until a source yields results. An empty result with a nil error
// means every source came back clean but without drawings (normal early in
// the day).
func (s *Scraper) ScrapeHouse(ctx context.Context, hc HouseConfig, date string) (*HouseResult, error) {
	switch {
	case hc.FederalListing:
		return s.scrapeFederal(ctx, date)
	case hc.BoaSorte:
		return s.scrapeBoaSorte(ctx, date)
	}

	url := s.primaryURL(hc, date)
	result := &HouseResult{}

	// Attempt 1: primary source over plain HTTP, free.
	doc, err := s.fetchDoc(ctx, url)
	if err != nil {
		s.logger.Warn("primary source fetch failed", "house", hc.Code, "url", url, "error", err)
		result.record("resultadofacil", fetchOutcome(err))
	} else if drawings := ParseResultPage(doc, date, hc.House); len(drawings) > 0 {
		result.record("resultadofacil", OutcomeOK)
		result.Drawings = drawings
		result.SourceUsed = "resultadofacil"
		return result, nil
	} else {
		result.record("resultadofacil", OutcomeEmpty)
	}

	// Attempt 2: backup source, also free.
	if hc.PortalBrasilSlug != "" {
		s.logger.Info("falling back to backup source", "house", hc.Code)
		backupURL := fmt.Sprintf("%s/jogodobicho/%s/", s.endpoints.PortalBrasil, hc.PortalBrasilSlug)
		doc, err := s.fetchDoc(ctx, backupURL)
		if err != nil {
			s.logger.Warn("backup source fetch failed", "house", hc.Code, "error", err)
			result.record("portalbrasil", fetchOutcome(err))
		} else if drawings := ParsePortalBrasil(doc, date, hc.House); len(drawings) > 0 {
			result.record("portalbrasil", OutcomeOK)
			result.Drawings = drawings
			result.SourceUsed = "portalbrasil"
			return result, nil
		} else {
			result.record("portalbrasil", OutcomeEmpty)
		}
	}

	// Attempt 3: paid renderer against the primary page. One credit.
	s.logger.Info("falling back to paid renderer", "house", hc.Code, "url", url)
	page, err := s.renderer.Render(ctx, url)
	if err != nil {
		result.record("render", OutcomeError)
		return result, fmt.Errorf("all sources failed for %s: %w", hc.Code, err)
	}

	result.SourceUsed = "render"
	result.CreditsUsed = 1
	if page.HTML != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
		if err == nil {
			result.Drawings = ParseResultPage(doc, date, hc.House)
		}
	}
	if len(result.Drawings) == 0 && page.Markdown != "" {
		result.Drawings = ParseMarkdown(page.Markdown, date, hc.House)
		result.SourceUsed = "render/markdown"
	}
	if len(result.Drawings) > 0 {
		result.record("render", OutcomeOK)
	} else {
		result.record("render", OutcomeEmpty)
	}
	return result, nil
}

func (s *Scraper) scrapeFederal(ctx context.Context, date string) (*HouseResult, error) {
	result := &HouseResult{}
	url := s.endpoints.ResultadoFacil + "/ultimos-resultados-da-federal"
	doc, err := s.fetchDoc(ctx, url)
	if err != nil {
		result.record("resultadofacil/federal", fetchOutcome(err))
		return result, fmt.Errorf("federal listing fetch failed: %w", err)
	}

	dateBR, err := utils.BRDate(date)
	if err != nil {
		return nil, err
	}
	result.Drawings = ParseFederalListing(doc, date, dateBR)
	result.SourceUsed = "resultadofacil/federal"
	if len(result.Drawings) > 0 {
		result.record("resultadofacil/federal", OutcomeOK)
	} else {
		result.record("resultadofacil/federal", OutcomeEmpty)
	}
	return result, nil
}

func (s *Scraper) scrapeBoaSorte(ctx context.Context, date string) (*HouseResult, error) {
	dateBR, err := utils.BRDate(date)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/boa-sorte-loterias-%s", s.endpoints.LookGoias, strings.ReplaceAll(dateBR, "/", "-"))
	result := &HouseResult{}

	doc, err := s.fetchDoc(ctx, url)
	if err != nil {
		s.logger.Warn("boa sorte primary fetch failed", "url", url, "error", err)
		result.record("lookgoias", fetchOutcome(err))
	} else if drawings := ParseBoaSorte(doc, date, "lookgoias"); len(drawings) > 0 {
		result.record("lookgoias", OutcomeOK)
		result.Drawings = drawings
		result.SourceUsed = "lookgoias"
		return result, nil
	} else {
		result.record("lookgoias", OutcomeEmpty)
	}

	// The fallback site only shows the current day, which is the usual case.
	s.logger.Info("falling back to secondary boa sorte source")
	fallbackURL := s.endpoints.HojeNoBicho + "/resultados/bs/"
	doc, err = s.fetchDoc(ctx, fallbackURL)
	if err != nil {
		result.record("hojenobicho", fetchOutcome(err))
		return result, fmt.Errorf("all boa sorte sources failed: %w", err)
	}
	result.Drawings = ParseBoaSorte(doc, date, "hojenobicho")
	result.SourceUsed = "hojenobicho"
	if len(result.Drawings) > 0 {
		result.record("hojenobicho", OutcomeOK)
	} else {
		result.record("hojenobicho", OutcomeEmpty)
	}
	return result, nil
}
