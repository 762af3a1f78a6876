package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/Darshil0305/guitar-tabs-api/errors"
	"github.com/Darshil0305/guitar-tabs-api/logging"
	"github.com/Darshil0305/guitar-tabs-api/tabgen"
)

// GenerateTabsRequest is the POST /api/generate-tabs body
type GenerateTabsRequest struct {
	URL           string `json:"url"`
	UseCapo       bool   `json:"use_capo"`
	IsFingerstyle bool   `json:"is_fingerstyle"`
}

// GenerateTabsResponse mirrors the original API shape
type GenerateTabsResponse struct {
	Tabs        *tabgen.SongResult `json:"tabs"`
	SongDetails SongDetails        `json:"song_details"`
}

// SongDetails duplicates the song metadata at the top level for clients
type SongDetails struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	VideoID string `json:"videoId"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerateTabs(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := s.logger.WithFields(logging.Fields{"request_id": requestID})

	var req GenerateTabsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body", RequestID: requestID})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing YouTube URL", RequestID: requestID})
		return
	}

	logger.Info("Generating tabs", logging.Fields{
		"url":         req.URL,
		"use_capo":    req.UseCapo,
		"fingerstyle": req.IsFingerstyle,
	})

	result, err := s.pipeline.GenerateFromYouTube(r.Context(), req.URL, req.UseCapo, req.IsFingerstyle)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidURL) {
			status = http.StatusBadRequest
		}
		logger.Error(err, "Tab generation failed")
		writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	writeJSON(w, http.StatusOK, GenerateTabsResponse{
		Tabs: result,
		SongDetails: SongDetails{
			Title:   result.Title,
			Artist:  result.Artist,
			VideoID: result.VideoID,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
