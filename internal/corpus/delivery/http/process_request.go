package http

import (
	"io"
	"strings"

	"aegis-srv/internal/corpus"

	"github.com/gin-gonic/gin"
)

// maxImportBytes caps corpus uploads.
const maxImportBytes = 8 << 20

func (h *handler) processListEntitiesRequest(c *gin.Context) (listEntitiesReq, error) {
	var req listEntitiesReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.processListEntitiesRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processReplaceCorpusRequest(c *gin.Context) (replaceCorpusReq, error) {
	var req replaceCorpusReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.processReplaceCorpusRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

// processImportCorpusRequest reads the raw body. The format comes from ?format= or, failing
// that, the Content-Type.
func (h *handler) processImportCorpusRequest(c *gin.Context) (importCorpusReq, error) {
	ctx := c.Request.Context()

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.processImportCorpusRequest: read body failed: %v", err)
		return importCorpusReq{}, errInvalidRequest
	}
	if len(data) == 0 {
		return importCorpusReq{}, errInvalidRequest
	}

	return importCorpusReq{
		Format: requestFormat(c),
		Data:   data,
	}, nil
}

func requestFormat(c *gin.Context) string {
	if f := strings.ToLower(c.Query("format")); f != "" {
		return f
	}
	if strings.Contains(c.ContentType(), "yaml") {
		return corpus.FormatYAML
	}
	return corpus.FormatJSON
}
