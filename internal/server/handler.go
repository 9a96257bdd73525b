package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

var errInvalidSeed = errors.New("seed must be a 32-bit integer")

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/rects", h.GetRects)
	e.GET("/v1/rects/summary", h.GetSummary)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// batchQuery holds the parsed query parameters shared by the rect endpoints.
type batchQuery struct {
	seed      int64
	preset    rect.Preset
	algorithm rng.Algorithm
}

func parseBatchQuery(c echo.Context) (batchQuery, error) {
	var q batchQuery
	if raw := c.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return q, fmt.Errorf("%w: %q", errInvalidSeed, raw)
		}
		q.seed = seed
	}

	var err error
	if q.preset, err = rect.ParsePreset(c.QueryParam("preset")); err != nil {
		return q, err
	}
	if q.algorithm, err = rng.ParseAlgorithm(c.QueryParam("algorithm")); err != nil {
		return q, err
	}
	return q, nil
}

func (q batchQuery) generate() []rect.Rect {
	return rect.Generate(rng.New(q.algorithm, q.seed), q.preset.Params())
}

// GetRects returns one batch. JSON is the default format; format=binary
// returns the raw 160-byte float32 buffer.
func (h *Handler) GetRects(c echo.Context) error {
	q, err := parseBatchQuery(c)
	if err != nil {
		return h.mapError(c, err)
	}

	format := export.JSON
	if raw := c.QueryParam("format"); raw != "" {
		if format, err = export.ParseFormat(raw); err != nil {
			return h.mapError(c, err)
		}
	}

	doc := export.NewDocument(q.seed, q.preset, q.algorithm, q.generate())
	var body bytes.Buffer
	if err := export.Write(&body, format, doc); err != nil {
		return h.mapError(c, err)
	}
	return c.Blob(http.StatusOK, format.ContentType(), body.Bytes())
}

func (h *Handler) GetSummary(c echo.Context) error {
	q, err := parseBatchQuery(c)
	if err != nil {
		return h.mapError(c, err)
	}

	requestID, _ := c.Get(contextKeyRequestID).(string)
	return c.JSON(http.StatusOK, SummaryResponse{
		Seed:      q.seed,
		Preset:    q.preset,
		Algorithm: q.algorithm,
		Summary:   rect.Summarize(q.generate()),
		RequestID: requestID,
	})
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get(contextKeyRequestID).(string)

	switch {
	case errors.Is(err, errInvalidSeed),
		errors.Is(err, rect.ErrUnknownPreset),
		errors.Is(err, rng.ErrUnknownAlgorithm),
		errors.Is(err, export.ErrUnknownFormat):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
