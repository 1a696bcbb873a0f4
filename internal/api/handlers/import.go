package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tcg-collection-tracker/internal/importer"
	"github.com/donaldgifford/tcg-collection-tracker/internal/metrics"
	"github.com/donaldgifford/tcg-collection-tracker/internal/store"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

const maxImportBytes = 16 << 20

// ImportHandler turns an uploaded CSV export into a new collection.
type ImportHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(s store.Store, log *slog.Logger) *ImportHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ImportHandler{store: s, log: log}
}

// ImportInput is a raw CSV upload.
type ImportInput struct {
	UserID  string `header:"X-User-ID" required:"true" minLength:"1" doc:"Caller user id"`
	Name    string `query:"name" required:"true" minLength:"1" maxLength:"200" doc:"Collection name" example:"Cube 2024"`
	RawBody []byte `contentType:"text/csv"`
}

// ImportOutput is the created collection plus the parse report.
type ImportOutput struct {
	Body struct {
		Collection domain.Collection   `json:"collection"`
		Report     domain.ImportReport `json:"report"`
	}
}

// Import handles POST /api/v1/collections/import.
func (h *ImportHandler) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, huma.Error400BadRequest("collection name is required")
	}

	cards, report, err := importer.Parse(bytes.NewReader(input.RawBody))
	if err != nil {
		if errors.Is(err, importer.ErrMissingColumns) || errors.Is(err, importer.ErrEmpty) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error400BadRequest("parsing CSV failed: " + err.Error())
	}

	c := &domain.Collection{Name: name, UserID: input.UserID}
	if err := h.store.CreateCollection(ctx, c, cards); err != nil {
		return nil, huma.Error500InternalServerError("creating collection failed: " + err.Error())
	}
	metrics.ImportsTotal.Inc()

	h.log.Info("collection imported",
		"collection_id", c.ID,
		"user_id", input.UserID,
		"parsed", report.Parsed,
		"skipped", report.Skipped,
	)

	resp := &ImportOutput{}
	resp.Body.Collection = *c
	resp.Body.Report = report
	return resp, nil
}

// RegisterImportRoutes registers the CSV import endpoint with the Huma API.
func RegisterImportRoutes(api huma.API, h *ImportHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "import-collection",
		Method:        http.MethodPost,
		Path:          "/api/v1/collections/import",
		Summary:       "Import a collection",
		Description:   "Creates a collection from a Manabox or Moxfield style CSV export.",
		Tags:          []string{"collections"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  maxImportBytes,
		Errors:        []int{http.StatusBadRequest},
	}, h.Import)
}
