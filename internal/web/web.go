// Package web serves the player as a local HTML page with a small JSON API.
//
// The page hosts the real YouTube iframe, which a terminal cannot. All state lives in a
// [player.Store]; handlers only translate requests into commands.
//
// Routes
//
//	GET  /             player page
//	GET  /api/state    current player snapshot
//	GET  /api/tracks   catalog in order
//	POST /api/select   {"id": n}
//	POST /api/command  {"command": "toggle_play", "value": n}
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	ytembed "github.com/desertthunder/neonx/internal/embed"
	"github.com/desertthunder/neonx/internal/models"
	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/server"
	"github.com/desertthunder/neonx/internal/shared"
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.New("index.html").ParseFS(templates, "templates/index.html"))

// Handler exposes a [player.Store] over HTTP.
type Handler struct {
	store   *player.Store
	catalog *models.Catalog
	logger  *log.Logger
}

// StateResponse is the body of GET /api/state and of every successful POST.
type StateResponse struct {
	Player string `json:"player"`
	player.Snapshot
	EmbedURL string `json:"embed_url,omitempty"`
	WatchURL string `json:"watch_url,omitempty"`
}

// TrackResponse is one entry of GET /api/tracks.
type TrackResponse struct {
	models.Track
	Position int    `json:"position"`
	Seconds  int    `json:"seconds"`
	WatchURL string `json:"watch_url"`
}

type selectRequest struct {
	ID int `json:"id"`
}

type commandRequest struct {
	Command string `json:"command"`
	Value   int    `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type pageData struct {
	Title       string
	State       StateResponse
	Description string
	Tracks      []TrackResponse
	Total       string
}

// NewHandler creates a handler over store and catalog.
func NewHandler(store *player.Store, catalog *models.Catalog, logger *log.Logger) *Handler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Handler{
		store:   store,
		catalog: catalog,
		logger:  shared.WithLogger(logger, "web", store.ID()),
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r server.Router) {
	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(h.Index))
	r.Handle(http.MethodGet, "/api/state", http.HandlerFunc(h.State))
	r.Handle(http.MethodGet, "/api/tracks", http.HandlerFunc(h.Tracks))
	r.Handle(http.MethodPost, "/api/select", http.HandlerFunc(h.Select))
	r.Handle(http.MethodPost, "/api/command", http.HandlerFunc(h.Command))
}

// Index renders the player page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	s := h.store.State()
	data := pageData{
		Title:  "Neural YouTube Player",
		State:  h.stateResponse(s),
		Tracks: h.trackResponses(),
		Total:  player.FormatTime(h.catalog.TotalSeconds()),
	}
	if s.Track != nil {
		data.Description = ytembed.Description(*s.Track)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		h.logger.Error("render page", "error", err)
	}
}

// State writes the current snapshot.
func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.stateResponse(h.store.State()))
}

// Tracks writes the catalog.
func (h *Handler) Tracks(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.trackResponses())
}

// Select plays the catalog track with the requested id.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	track, ok := h.catalog.Get(req.ID)
	if !ok {
		h.writeError(w, fmt.Errorf("%w: id %d", shared.ErrTrackNotFound, req.ID))
		return
	}

	s := h.store.Dispatch(player.SelectTrack(track))
	h.writeJSON(w, http.StatusOK, h.stateResponse(s))
}

// Command applies a named transport command.
//
// Ticks belong to the store's clock and are refused here.
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	c, err := player.ParseCommand(req.Command, req.Value)
	if err == nil && c.Kind == player.CmdTick {
		err = fmt.Errorf("%w: %q", shared.ErrUnknownCommand, req.Command)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	s := h.store.Dispatch(c)
	h.writeJSON(w, http.StatusOK, h.stateResponse(s))
}

func (h *Handler) stateResponse(s player.State) StateResponse {
	resp := StateResponse{Player: h.store.ID(), Snapshot: s.Snapshot()}
	if s.Track != nil {
		resp.EmbedURL = ytembed.EmbedURL(*s.Track, s.Playing, s.Muted)
		resp.WatchURL = ytembed.WatchURL(*s.Track)
	}
	return resp
}

func (h *Handler) trackResponses() []TrackResponse {
	tracks := h.catalog.Tracks()
	out := make([]TrackResponse, len(tracks))
	for i, t := range tracks {
		out[i] = TrackResponse{Track: t, Position: i + 1, Seconds: t.Seconds(), WatchURL: ytembed.WatchURL(t)}
	}
	return out
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrTrackNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrUnknownCommand), errors.Is(err, shared.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
