package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/glidecamp/islandgen/internal/gen"
	"github.com/glidecamp/islandgen/internal/geom"
	"github.com/glidecamp/islandgen/internal/island"
	"github.com/glidecamp/islandgen/internal/store"
)

// generateTimeout bounds one generation plus its store write.
const generateTimeout = 30 * time.Second

// Handler serves the island API. It owns the store plus a cache of
// deserialized graphs so repeated spatial queries against the same island do
// not re-parse the stored document.
type Handler struct {
	store *store.Store

	mu     sync.Mutex
	graphs map[string]*island.Graph
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{
		store:  s,
		graphs: make(map[string]*island.Graph),
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "islandgen",
		"version":   "1.0.0",
	})
}

// ListTemplates returns the built-in template names.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{"templates": gen.TemplateNames()})
}

// createIslandRequest selects a template and overlays optional field
// overrides. Nested override objects merge rather than replace.
type createIslandRequest struct {
	Seed      int64           `json:"seed"`
	Template  string          `json:"template"`
	Overrides json.RawMessage `json:"overrides,omitempty"`
}

// CreateIsland generates an island from a template plus overrides, stores
// it and returns the stored summary.
func (h *Handler) CreateIsland(w http.ResponseWriter, r *http.Request) {
	var req createIslandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Template == "" {
		h.renderError(w, r, http.StatusBadRequest, "template is required", nil)
		return
	}

	cfg, err := gen.Template(req.Template)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "unknown template", err)
		return
	}
	cfg.Seed = req.Seed
	if len(req.Overrides) > 0 {
		if err := cfg.ApplyJSON(req.Overrides); err != nil {
			h.renderError(w, r, http.StatusBadRequest, "invalid config overrides", err)
			return
		}
	}

	generator, err := gen.New(cfg)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid generation config", err)
		return
	}

	graph, err := generator.Generate()
	if err != nil {
		log.Error("failed to generate island", "error", err, "seed", cfg.Seed, "template", req.Template)
		h.renderError(w, r, http.StatusInternalServerError, "failed to generate island", err)
		return
	}

	graphDoc, err := island.Serialize(graph)
	if err != nil {
		log.Error("failed to serialize island", "error", err, "seed", cfg.Seed)
		h.renderError(w, r, http.StatusInternalServerError, "failed to serialize island", err)
		return
	}
	cfgDoc, err := json.Marshal(cfg)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to encode config", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	summary, err := h.store.Save(ctx, store.SaveParams{
		Seed:        cfg.Seed,
		Template:    req.Template,
		Config:      cfgDoc,
		Graph:       graphDoc,
		RegionCount: len(graph.Regions),
		LandRatio:   graph.LandRatio(),
	})
	if err != nil {
		log.Error("failed to store island", "error", err, "seed", cfg.Seed)
		h.renderError(w, r, http.StatusInternalServerError, "failed to store island", err)
		return
	}

	h.mu.Lock()
	h.graphs[summary.ID] = graph
	h.mu.Unlock()

	log.Info("generated island", "island_id", summary.ID, "seed", cfg.Seed,
		"template", req.Template, "regions", summary.RegionCount, "land_ratio", summary.LandRatio)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, summary)
}

// ListIslands returns summaries of every stored island, newest first.
func (h *Handler) ListIslands(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summaries, err := h.store.List(ctx)
	if err != nil {
		log.Error("failed to list islands", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "failed to list islands", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{"islands": summaries})
}

// GetIsland returns the full serialized graph document of one island.
func (h *Handler) GetIsland(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "island not found", err)
		return
	}
	if err != nil {
		log.Error("failed to load island", "error", err, "island_id", id)
		h.renderError(w, r, http.StatusInternalServerError, "failed to load island", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"id":       rec.ID,
		"seed":     rec.Seed,
		"template": rec.Template,
		"graph":    json.RawMessage(rec.Graph),
	})
}

// DeleteIsland removes a stored island and drops it from the graph cache.
func (h *Handler) DeleteIsland(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := h.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "island not found", err)
		return
	}
	if err != nil {
		log.Error("failed to delete island", "error", err, "island_id", id)
		h.renderError(w, r, http.StatusInternalServerError, "failed to delete island", err)
		return
	}

	h.mu.Lock()
	delete(h.graphs, id)
	h.mu.Unlock()

	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// GetRegionAt answers a point-to-region lookup against a stored island.
func (h *Handler) GetRegionAt(w http.ResponseWriter, r *http.Request) {
	x, err := parseFloatQuery(r, "x")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid x coordinate", err)
		return
	}
	y, err := parseFloatQuery(r, "y")
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid y coordinate", err)
		return
	}

	graph, ok := h.loadGraph(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	region, found := graph.RegionAt(x, y)
	if !found {
		h.renderError(w, r, http.StatusNotFound, "no region contains the point", nil)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, regionResponse(region))
}

// QueryRegions returns every region whose bounding box overlaps the query
// rectangle.
func (h *Handler) QueryRegions(w http.ResponseWriter, r *http.Request) {
	var bounds geom.Rect
	var err error
	if bounds.Min.X, err = parseFloatQuery(r, "minX"); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid minX coordinate", err)
		return
	}
	if bounds.Min.Y, err = parseFloatQuery(r, "minY"); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid minY coordinate", err)
		return
	}
	if bounds.Max.X, err = parseFloatQuery(r, "maxX"); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid maxX coordinate", err)
		return
	}
	if bounds.Max.Y, err = parseFloatQuery(r, "maxY"); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid maxY coordinate", err)
		return
	}
	if bounds.Max.X < bounds.Min.X || bounds.Max.Y < bounds.Min.Y {
		h.renderError(w, r, http.StatusBadRequest, "query bounds are inverted", nil)
		return
	}

	graph, ok := h.loadGraph(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	regions := graph.RegionsInBounds(bounds)
	out := make([]regionDTO, 0, len(regions))
	for _, region := range regions {
		out = append(out, regionResponse(region))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{"regions": out})
}

// GetNeighbors returns the regions adjacent to one region of a stored
// island.
func (h *Handler) GetNeighbors(w http.ResponseWriter, r *http.Request) {
	regionID, err := strconv.Atoi(chi.URLParam(r, "regionID"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid region id", err)
		return
	}

	graph, ok := h.loadGraph(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	neighbors, found := graph.Neighbors(regionID)
	if !found {
		h.renderError(w, r, http.StatusNotFound, "region not found", nil)
		return
	}

	out := make([]regionDTO, 0, len(neighbors))
	for _, region := range neighbors {
		out = append(out, regionResponse(region))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"region_id": regionID,
		"neighbors": out,
	})
}

// loadGraph fetches an island's deserialized graph, filling the cache on a
// miss. On failure it renders the error itself and reports false.
func (h *Handler) loadGraph(w http.ResponseWriter, r *http.Request, id string) (*island.Graph, bool) {
	h.mu.Lock()
	graph, ok := h.graphs[id]
	h.mu.Unlock()
	if ok {
		return graph, true
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "island not found", err)
		return nil, false
	}
	if err != nil {
		log.Error("failed to load island", "error", err, "island_id", id)
		h.renderError(w, r, http.StatusInternalServerError, "failed to load island", err)
		return nil, false
	}

	graph, err = island.Deserialize(rec.Graph)
	if err != nil {
		log.Error("failed to decode stored island", "error", err, "island_id", id)
		h.renderError(w, r, http.StatusInternalServerError, "failed to decode stored island", err)
		return nil, false
	}

	h.mu.Lock()
	h.graphs[id] = graph
	h.mu.Unlock()
	return graph, true
}

// regionDTO is the HTTP view of a region for spatial query responses. The
// full polygon stays in the graph document; queries return the summary
// fields consumers key decisions on.
type regionDTO struct {
	ID        int       `json:"id"`
	Centroid  geom.Vec2 `json:"centroid"`
	Elevation float64   `json:"elevation"`
	IsOcean   bool      `json:"is_ocean"`
	IsLake    bool      `json:"is_lake"`
	Moisture  float64   `json:"moisture"`
	Biome     string    `json:"biome"`
	Neighbors []int     `json:"neighbors"`
}

func regionResponse(r island.Region) regionDTO {
	return regionDTO{
		ID:        r.ID,
		Centroid:  r.Centroid,
		Elevation: r.Elevation,
		IsOcean:   r.IsOcean,
		IsLake:    r.IsLake,
		Moisture:  r.Moisture,
		Biome:     string(r.Biome),
		Neighbors: r.Neighbors,
	}
}

func parseFloatQuery(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q is not a number: %w", key, err)
	}
	return v, nil
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	response := map[string]interface{}{
		"error": message,
		"code":  status,
	}
	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			response["error"] = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, response)
}
