// Package batch runs an ordered set of completion rows against the
// provider, one row at a time. Each row is independent: its own inputs,
// its own uploads, its own outcome record. A failed row either aborts the
// run or is recorded and skipped, depending on [Options.ContinueOnFail].
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flowkit-dev/respond"
	"github.com/segmentio/ksuid"
)

// Responder performs a single completion call.
type Responder interface {
	CreateResponse(ctx context.Context, req respond.Request) (*respond.Response, error)
}

// Uploader stores binary content with the provider ahead of a completion
// call.
type Uploader interface {
	UploadFile(ctx context.Context, req *respond.UploadFileRequest) (*respond.UploadFileResponse, error)
}

// Binary is file content attached to a row that must be uploaded before
// the row's completion call.
type Binary struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data"`
}

// Row is one unit of work: everything needed to build a single request.
// Files accepts the same loose shapes as [respond.Normalize].
type Row struct {
	Model            respond.Model             `json:"model,omitempty"`
	Prompt           string                    `json:"prompt"`
	Files            any                       `json:"files,omitempty"`
	MaxOutputTokens  int                       `json:"maxOutputTokens,omitempty"`
	Temperature      *float64                  `json:"temperature,omitempty"`
	ReasoningEffort  respond.Effort            `json:"reasoningEffort,omitempty"`
	ReasoningSummary respond.SummaryMode       `json:"reasoningSummary,omitempty"`
	Verbosity        respond.Verbosity         `json:"verbosity,omitempty"`
	WebSearch        *respond.WebSearchOptions `json:"webSearch,omitempty"`
	Binaries         []Binary                  `json:"binaries,omitempty"`
}

// Options controls a run.
type Options struct {
	// ContinueOnFail records a row's error and moves on instead of
	// aborting the whole run.
	ContinueOnFail bool

	// QuickMode trades quality for latency on every row.
	QuickMode bool

	// RawOutput keeps the provider's response body on the record instead
	// of the extracted result.
	RawOutput bool

	// DefaultModel is used for rows that don't name one.
	DefaultModel respond.Model

	// UploadPurpose is the purpose attached to uploaded binaries.
	// Defaults to "user_data".
	UploadPurpose string
}

// UploadSkip records a binary that failed to upload. The row still runs
// without it.
type UploadSkip struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ErrorRecord is a row failure in a shape safe to serialize.
type ErrorRecord struct {
	Error      string         `json:"error"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"statusCode,omitempty"`
}

// Record is the outcome of one row.
type Record struct {
	RowID   string            `json:"rowId"`
	Result  *respond.Result   `json:"result,omitempty"`
	Raw     *respond.Response `json:"raw,omitempty"`
	Err     *ErrorRecord      `json:"error,omitempty"`
	Skipped []UploadSkip      `json:"skipped,omitempty"`
}

// Runner executes rows sequentially.
type Runner struct {
	responder Responder
	uploader  Uploader
	log       *slog.Logger
	opts      Options
}

// NewRunner returns a Runner. A nil logger falls back to slog.Default().
func NewRunner(responder Responder, uploader Uploader, log *slog.Logger, opts Options) *Runner {
	if log == nil {
		log = slog.Default()
	}
	if opts.UploadPurpose == "" {
		opts.UploadPurpose = "user_data"
	}
	return &Runner{
		responder: responder,
		uploader:  uploader,
		log:       log,
		opts:      opts,
	}
}

// Run executes the rows in order and returns one record per completed row,
// in the same order. Without ContinueOnFail the first row error stops the
// run; the records produced so far are returned alongside the error.
func (r *Runner) Run(ctx context.Context, rows []Row) ([]Record, error) {
	records := make([]Record, 0, len(rows))

	for i, row := range rows {
		rec, err := r.runRow(ctx, row)
		if err != nil {
			if !r.opts.ContinueOnFail {
				return records, fmt.Errorf("row %d: %w", i, err)
			}
			rec.Err = toErrorRecord(err)
			r.log.Error("row failed", "row", i, "error", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *Runner) runRow(ctx context.Context, row Row) (Record, error) {
	rec := Record{RowID: ksuid.New().String()}

	cfg := respond.Config{
		Model:            row.Model,
		Prompt:           row.Prompt,
		MaxOutputTokens:  row.MaxOutputTokens,
		Temperature:      row.Temperature,
		ReasoningEffort:  row.ReasoningEffort,
		ReasoningSummary: row.ReasoningSummary,
		Verbosity:        row.Verbosity,
		WebSearch:        row.WebSearch,
	}
	if cfg.Model == "" {
		cfg.Model = r.opts.DefaultModel
	}

	cfg.Files = respond.ClassifyTokens(respond.Normalize(row.Files))

	var firstFileID string
	for _, bin := range row.Binaries {
		up, err := r.uploader.UploadFile(ctx, &respond.UploadFileRequest{
			Name:        bin.Name,
			Purpose:     r.opts.UploadPurpose,
			ContentType: bin.ContentType,
			Body:        bytes.NewReader(bin.Data),
		})
		if err != nil {
			r.log.Warn("upload skipped", "name", bin.Name, "error", err)
			rec.Skipped = append(rec.Skipped, UploadSkip{Name: bin.Name, Error: err.Error()})
			continue
		}
		cfg.Files = append(cfg.Files, respond.FileRef{ID: up.ID, MIME: bin.ContentType})
		if firstFileID == "" {
			firstFileID = up.ID
		}
	}

	if r.opts.QuickMode {
		cfg = respond.QuickMode(cfg)
	}

	resp, err := r.responder.CreateResponse(ctx, respond.Build(cfg))
	if err != nil {
		return rec, err
	}

	if r.opts.RawOutput {
		rec.Raw = resp
		return rec, nil
	}

	result := respond.Extract(resp, cfg.Model)
	result.FileID = firstFileID
	rec.Result = &result

	return rec, nil
}

func toErrorRecord(err error) *ErrorRecord {
	rec := &ErrorRecord{Error: err.Error()}

	var apiErr *respond.APIError
	if errors.As(err, &apiErr) {
		rec.StatusCode = apiErr.StatusCode
		rec.Details = map[string]any{
			"code":    apiErr.Code,
			"type":    apiErr.Type,
			"message": apiErr.Message,
		}
		return rec
	}

	var timeoutErr *respond.TimeoutError
	if errors.As(err, &timeoutErr) {
		rec.Details = map[string]any{"timeout": true}
	}

	return rec
}
