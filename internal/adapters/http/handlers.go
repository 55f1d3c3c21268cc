package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/colorfocus/internal/analyzer"
	"svw.info/colorfocus/internal/classifier"
	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/metrics"
	"svw.info/colorfocus/internal/palette"
	"svw.info/colorfocus/internal/ports"
	"svw.info/colorfocus/internal/usecase"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "1.0.0"

// Defaults are applied to generate requests that omit parameters.
type Defaults struct {
	GridSize          int
	ColorCount        int
	CongruencePercent int
	Language          domain.Language
}

// Handlers contains the HTTP handlers for the puzzle service.
type Handlers struct {
	uc       *usecase.Service
	pal      *palette.Palette
	rules    *classifier.Rules
	met      *metrics.Metrics
	defaults Defaults
	logger   *slog.Logger
}

func NewHandlers(uc *usecase.Service, pal *palette.Palette, rules *classifier.Rules, met *metrics.Metrics, d Defaults, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{uc: uc, pal: pal, rules: rules, met: met, defaults: d, logger: logger}
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		status = http.StatusBadRequest
		code = "INVALID_PARAMETER"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.Is(err, domain.ErrDistribution):
		code = "DISTRIBUTION_ERROR"
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// getOrCreateRequestID gets or creates a request ID.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// ---- Generate ----

type generateReq struct {
	GridSize          int      `json:"gridSize" binding:"omitempty,min=1,max=8"`
	ColorCount        int      `json:"colorCount" binding:"omitempty,min=2,max=8"`
	Colors            []string `json:"colors" binding:"omitempty,min=2,max=8"`
	CongruencePercent *int     `json:"congruencePercent" binding:"omitempty,min=0,max=100"`
	Seed              string   `json:"seed"`
	Language          string   `json:"language"`
}

type generateResp struct {
	Puzzle     *domain.PuzzleGrid `json:"puzzle"`
	DurationMs int64              `json:"durationMs"`
	Attempts   int                `json:"attempts"`
}

// HandleGenerate handles POST /api/v1/puzzles. Omitted parameters fall
// back to configured defaults; an omitted color list uses the standard
// accessibility subset for the requested color count.
func (h *Handlers) HandleGenerate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleGenerate")

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	params, err := h.buildParams(req)
	if err != nil {
		respondError(c, err)
		return
	}

	grid, stats, err := h.uc.Generate(c.Request.Context(), params)
	if stats.Attempts > 1 {
		h.met.GenerationRetries.Add(float64(stats.Attempts - 1))
	}
	if err != nil {
		if errors.Is(err, domain.ErrDistribution) {
			h.met.GenerationFailures.Inc()
		}
		logger.Error("generate failed", "error", err)
		respondError(c, err)
		return
	}
	h.met.PuzzlesGenerated.WithLabelValues(fmt.Sprint(grid.ColorCount)).Inc()
	logger.Info("puzzle generated",
		"seed", grid.Seed,
		"gridSize", grid.GridSize,
		"colorCount", grid.ColorCount,
		"attempts", stats.Attempts,
		"dur", stats.Duration.Round(time.Microsecond),
	)
	c.JSON(http.StatusOK, generateResp{
		Puzzle:     grid,
		DurationMs: stats.Duration.Milliseconds(),
		Attempts:   stats.Attempts,
	})
}

func (h *Handlers) buildParams(req generateReq) (ports.GenerateParams, error) {
	p := ports.GenerateParams{
		GridSize:          req.GridSize,
		CongruencePercent: h.defaults.CongruencePercent,
		Seed:              req.Seed,
		Language:          h.defaults.Language,
	}
	if p.GridSize == 0 {
		p.GridSize = h.defaults.GridSize
	}
	if req.CongruencePercent != nil {
		p.CongruencePercent = *req.CongruencePercent
	}
	if req.Language != "" {
		p.Language = domain.ParseLanguage(req.Language)
	}
	if len(req.Colors) > 0 {
		colors := make([]domain.ColorToken, 0, len(req.Colors))
		for _, s := range req.Colors {
			token, err := domain.ParseColorToken(s)
			if err != nil {
				return ports.GenerateParams{}, err
			}
			colors = append(colors, token)
		}
		p.Colors = colors
		return p, nil
	}
	count := req.ColorCount
	if count == 0 {
		count = h.defaults.ColorCount
	}
	colors, err := palette.DefaultSubset(count)
	if err != nil {
		return ports.GenerateParams{}, err
	}
	p.Colors = colors
	return p, nil
}

// ---- Discrepancies ----

type discrepanciesReq struct {
	Grid    domain.PuzzleGrid   `json:"grid" binding:"required"`
	Answers domain.AnswerRecord `json:"answers" binding:"required"`
}

type discrepanciesResp struct {
	Discrepancies domain.DiscrepancyReport `json:"discrepancies"`
}

// HandleDiscrepancies handles POST /api/v1/analysis/discrepancies.
func (h *Handlers) HandleDiscrepancies(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleDiscrepancies")

	var req discrepanciesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if err := validateGridShape(&req.Grid); err != nil {
		respondError(c, err)
		return
	}
	report, err := h.uc.Discrepancies(&req.Grid, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	h.met.DiscrepancyAnalyses.Inc()
	c.JSON(http.StatusOK, discrepanciesResp{Discrepancies: report})
}

// ---- Tile classification ----

type tilesReq struct {
	Grid      domain.PuzzleGrid  `json:"grid" binding:"required"`
	Color     string             `json:"color" binding:"required"`
	Positions []domain.CellCoord `json:"positions" binding:"required,min=1"`
}

type tilesResp struct {
	Marks   []analyzer.TileMark   `json:"marks"`
	Summary domain.MistakeSummary `json:"summary"`
}

// HandleTiles handles POST /api/v1/analysis/tiles: classifies each flagged
// position against the queried color and returns the aggregate summary of
// just these marks.
func (h *Handlers) HandleTiles(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleTiles")

	var req tilesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if err := validateGridShape(&req.Grid); err != nil {
		respondError(c, err)
		return
	}
	queried, err := domain.ParseColorToken(req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	marks := make([]analyzer.TileMark, 0, len(req.Positions))
	for _, pos := range req.Positions {
		verdict, err := h.uc.ClassifyTile(&req.Grid, pos, queried)
		if err != nil {
			respondError(c, err)
			return
		}
		h.met.TileClassifications.WithLabelValues(string(verdict)).Inc()
		marks = append(marks, analyzer.TileMark{Pos: pos, Classification: verdict})
	}
	c.JSON(http.StatusOK, tilesResp{Marks: marks, Summary: analyzer.Summarize(marks)})
}

// ---- Pattern ----

type patternReq struct {
	TotalMistakes    int    `json:"totalMistakes" binding:"min=0"`
	StroopInfluenced int    `json:"stroopInfluencedCount" binding:"min=0"`
	Language         string `json:"language"`
}

type patternResp struct {
	Pattern  domain.MistakePattern `json:"pattern"`
	Guidance string                `json:"guidance,omitempty"`
}

// HandlePattern handles POST /api/v1/analysis/pattern.
func (h *Handlers) HandlePattern(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandlePattern")

	var req patternReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	pattern, err := h.uc.Pattern(req.TotalMistakes, req.StroopInfluenced)
	if err != nil {
		respondError(c, err)
		return
	}
	lang := h.defaults.Language
	if req.Language != "" {
		lang = domain.ParseLanguage(req.Language)
	}
	c.JSON(http.StatusOK, patternResp{Pattern: pattern, Guidance: h.rules.Guidance(pattern, lang)})
}

// ---- Palette ----

type paletteEntry struct {
	Token    string            `json:"token"`
	Hex      string            `json:"hex"`
	Variants map[string]string `json:"variants"`
	Label    string            `json:"label"`
}

// HandlePalette handles GET /api/v1/palette.
func (h *Handlers) HandlePalette(c *gin.Context) {
	lang := domain.ParseLanguage(c.Query("lang"))
	entries := make([]paletteEntry, 0, 8)
	for _, token := range h.pal.Tokens() {
		variants := make(map[string]string, 3)
		for _, v := range []palette.Variant{palette.VariantDark, palette.VariantBase, palette.VariantBright} {
			if hex, ok := h.pal.HexVariant(token, v); ok {
				variants[string(v)] = hex
			}
		}
		entries = append(entries, paletteEntry{
			Token:    string(token),
			Hex:      h.pal.Hex(token),
			Variants: variants,
			Label:    h.pal.Label(token, lang),
		})
	}
	c.JSON(http.StatusOK, gin.H{"colors": entries, "language": lang})
}

// ---- History ----

type saveHistoryResp struct {
	ID string `json:"id"`
}

// HandleSaveHistory handles POST /api/v1/history.
func (h *Handlers) HandleSaveHistory(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleSaveHistory")

	var rec domain.HistoryRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixNano()
	}
	if err := h.uc.SaveHistory(c.Request.Context(), &rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saveHistoryResp{ID: rec.ID})
}

// HandleLoadHistory handles GET /api/v1/history/:id.
func (h *Handlers) HandleLoadHistory(c *gin.Context) {
	rec, err := h.uc.LoadHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// HandleListHistory handles GET /api/v1/history.
func (h *Handlers) HandleListHistory(c *gin.Context) {
	metas, err := h.uc.ListHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if metas == nil {
		metas = []domain.HistoryMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"history": metas})
}

// ---- Health ----

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{Status: "healthy", Version: ServiceVersion})
}

// validateGridShape rejects grids whose cell matrix does not match the
// declared size, before any analysis walks it.
func validateGridShape(g *domain.PuzzleGrid) error {
	if g.GridSize < 1 || g.GridSize > 8 {
		return fmt.Errorf("%w: gridSize %d outside 1..8", domain.ErrInvalidParameter, g.GridSize)
	}
	if len(g.Cells) != g.GridSize {
		return fmt.Errorf("%w: %d rows for gridSize %d", domain.ErrInvalidParameter, len(g.Cells), g.GridSize)
	}
	for r, row := range g.Cells {
		if len(row) != g.GridSize {
			return fmt.Errorf("%w: row %d has %d cells for gridSize %d", domain.ErrInvalidParameter, r, len(row), g.GridSize)
		}
	}
	if len(g.Colors) == 0 {
		return fmt.Errorf("%w: grid has no active colors", domain.ErrInvalidParameter)
	}
	for _, token := range g.Colors {
		if _, err := domain.ParseColorToken(string(token)); err != nil {
			return err
		}
	}
	return nil
}
