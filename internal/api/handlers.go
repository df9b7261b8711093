package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ytget/ytweb/internal/download"
	"github.com/ytget/ytweb/internal/formats"
	"github.com/ytget/ytweb/internal/logger"
	"github.com/ytget/ytweb/internal/model"
	"github.com/ytget/ytweb/internal/platform"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, model.HealthStatus{
		Status:  HealthStatusOK,
		Message: HealthMessage,
	})
}

func (s *Server) handleVideoInfo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var query model.VideoQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.fail(w, r, invalidInput(MsgInvalidBody))
		return
	}

	url := strings.TrimSpace(query.URL)
	if url == "" {
		s.fail(w, r, invalidInput(MsgURLRequired))
		return
	}
	if !s.extractor.ValidateURL(url) {
		s.fail(w, r, invalidInput(MsgInvalidURL))
		return
	}

	ctx := r.Context()
	if s.cfg.InfoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.InfoTimeout)
		defer cancel()
	}

	raw, err := s.extractor.GetInfo(ctx, url)
	if err != nil {
		s.fail(w, r, extractionFailed(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toMetadata(raw))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	url := strings.TrimSpace(query.Get("url"))
	itagParam := strings.TrimSpace(query.Get("itag"))

	if url == "" || itagParam == "" {
		s.fail(w, r, invalidInput(MsgURLAndItagRequired))
		return
	}
	itag, err := strconv.Atoi(itagParam)
	if err != nil || itag <= 0 {
		s.fail(w, r, invalidInput(MsgInvalidItag))
		return
	}
	if !s.extractor.ValidateURL(url) {
		s.fail(w, r, invalidInput(MsgInvalidURL))
		return
	}

	transfer, err := s.downloads.Open(r.Context(), download.Request{URL: url, Itag: itag})
	if err != nil {
		s.fail(w, r, downloadFailed(err))
		return
	}
	defer transfer.Close()

	aw := newAttachmentWriter(w, transfer.ContentDisposition())
	_, err = transfer.Copy(r.Context(), aw)
	if err == nil {
		// empty streams still get the attachment headers
		aw.commit()
		return
	}
	if !aw.committed {
		s.fail(w, r, downloadFailed(err))
		return
	}

	// headers and part of the body are out, the only signal left is a broken connection
	s.log.Warn("Download interrupted", logger.Fields{
		"transfer_id": transfer.ID,
		"request_id":  RequestIDFromContext(r.Context()),
		"error":       err,
	})
	panic(http.ErrAbortHandler)
}

// fail logs the cause of e and writes its client facing message
func (s *Server) fail(w http.ResponseWriter, r *http.Request, e *Error) {
	fields := logger.Fields{
		"kind":       e.Kind.String(),
		"path":       r.URL.Path,
		"request_id": RequestIDFromContext(r.Context()),
	}
	if e.Err != nil {
		fields["error"] = e.Err
		fields["reason"] = platform.Reason(e.Err)
	}

	if e.Kind == KindInvalidInput {
		s.log.Debug(e.Message, fields)
	} else {
		s.log.Error(e.Message, fields)
	}
	writeError(w, r, e)
}

func toMetadata(raw *model.RawVideo) model.VideoMetadata {
	return model.VideoMetadata{
		Title:     raw.Title,
		Thumbnail: raw.ThumbnailURL(),
		Duration:  raw.Duration,
		Author:    raw.Author,
		Formats:   formats.Select(raw.Formats),
	}
}
