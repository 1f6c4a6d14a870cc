package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"srtran/internal/config"
	"srtran/internal/logging"
	"srtran/internal/session"
	"srtran/internal/translate"
)

type TranslateHandler struct {
	cfg        *config.Config
	logger     *logging.Logger
	translator translate.Translator
}

func NewTranslateHandler(
	cfg *config.Config,
	logger *logging.Logger,
	translator translate.Translator,
) *TranslateHandler {
	return &TranslateHandler{
		cfg:        cfg,
		logger:     logger,
		translator: translator,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Translate accepts a multipart form with an .srt upload under "file" and a
// "language" field, and responds with the translated file as an attachment.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.cfg.Server.MaxUploadMiB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		jsonError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	language := strings.TrimSpace(r.FormValue("language"))
	if language == "" {
		jsonError(w, "no target language selected", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "no subtitle file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".srt" {
		jsonError(
			w,
			fmt.Sprintf("unsupported file type %q: only .srt is accepted", ext),
			http.StatusBadRequest,
		)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	sourceName := filepath.Base(header.Filename)
	if sourceName == "." || sourceName == "/" {
		sourceName = ""
	}

	sess := session.New(sourceName, language)
	sess.OutputPrefix = h.cfg.Output.Prefix
	sess.OutputFallback = h.cfg.Output.DefaultName
	sess.Concurrency = h.cfg.Translator.Concurrency

	result, err := sess.Run(r.Context(), h.translator, string(content))
	if err != nil {
		if errors.Is(err, session.ErrNoCues) ||
			errors.Is(err, session.ErrNoTargetLanguage) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("translation failed",
			"session", sess.ID,
			"error", err,
		)
		jsonError(w, "translation failed", http.StatusBadGateway)
		return
	}

	if len(result.Skipped) > 0 {
		h.logger.Warnw("skipped malformed blocks",
			"session", sess.ID,
			"count", len(result.Skipped),
		)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", sess.OutputName()),
	)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Output))
}

func jsonResponse(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}
