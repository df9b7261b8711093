package api

import (
	"net/http"

	"github.com/ytget/ytweb/internal/download"
)

// attachmentWriter delays the download headers until the first chunk, so a
// transfer that fails before any byte can still answer with a JSON error
type attachmentWriter struct {
	w           http.ResponseWriter
	rc          *http.ResponseController
	disposition string
	committed   bool
}

func newAttachmentWriter(w http.ResponseWriter, disposition string) *attachmentWriter {
	return &attachmentWriter{
		w:           w,
		rc:          http.NewResponseController(w),
		disposition: disposition,
	}
}

func (a *attachmentWriter) commit() {
	if a.committed {
		return
	}
	a.committed = true
	h := a.w.Header()
	h.Set("Content-Type", download.ContentType)
	h.Set("Content-Disposition", a.disposition)
	h.Set("X-Content-Type-Options", "nosniff")
	a.w.WriteHeader(http.StatusOK)
}

func (a *attachmentWriter) Write(p []byte) (int, error) {
	a.commit()
	return a.w.Write(p)
}

// Flush pushes buffered bytes to the client. Writers that cannot flush are
// left buffered.
func (a *attachmentWriter) Flush() {
	if a.committed {
		_ = a.rc.Flush()
	}
}
