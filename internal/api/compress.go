package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
)

// writeJSON encodes v as the response body, brotli-compressed when the
// client accepts it
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"` + MsgInternal + `"}`)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Add("Vary", "Accept-Encoding")

	if r == nil || !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
		h.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(status)
		w.Write(data)
		return
	}

	h.Set("Content-Encoding", "br")
	w.WriteHeader(status)
	bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	bw.Write(data)
	bw.Close()
}

// acceptsBrotli reports whether an Accept-Encoding value allows br
func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}
		params = strings.ReplaceAll(params, " ", "")
		if q, ok := strings.CutPrefix(params, "q="); ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v == 0 {
				return false
			}
		}
		return true
	}
	return false
}
