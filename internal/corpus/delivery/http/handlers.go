package http

import (
	"fmt"
	"net/http"

	"aegis-srv/internal/corpus"
	"aegis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List corpus entities
// @Tags Corpus
// @Produce json
// @Param query query string false "Substring of handle, hashtags or comments"
// @Param platform query string false "Platform name"
// @Param hashtag query string false "Exact hashtag, with or without #"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listEntitiesResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/corpus [get]
func (h *handler) ListEntities(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEntitiesRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.ListEntities: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListEntitiesResp(o))
}

// @Summary Corpus statistics
// @Tags Corpus
// @Produce json
// @Success 200 {object} statsResp
// @Router /api/v1/corpus/stats [get]
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.GetStats: usecase Stats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatsResp(s))
}

// @Summary Replace the corpus
// @Description Store a validated override that scans use instead of the seed
// @Tags Corpus
// @Accept json
// @Produce json
// @Param body body replaceCorpusReq true "Entities"
// @Success 200 {object} statsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/corpus [put]
func (h *handler) ReplaceCorpus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceCorpusRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Replace(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.ReplaceCorpus: usecase Replace failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatsResp(s))
}

// @Summary Import a corpus file
// @Description Raw JSON or YAML body; format from ?format= or Content-Type
// @Tags Corpus
// @Accept json
// @Accept application/x-yaml
// @Produce json
// @Param format query string false "json or yaml"
// @Success 200 {object} statsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/corpus/import [post]
func (h *handler) ImportCorpus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportCorpusRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.ImportCorpus: usecase Import failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatsResp(s))
}

// @Summary Export the active corpus
// @Tags Corpus
// @Produce json
// @Produce application/x-yaml
// @Param format query string false "json (default) or yaml"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Router /api/v1/corpus/export [get]
func (h *handler) ExportCorpus(c *gin.Context) {
	ctx := c.Request.Context()

	format := c.DefaultQuery("format", corpus.FormatJSON)
	data, err := h.uc.Export(ctx, format)
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.ExportCorpus: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	contentType := "application/json"
	if format != corpus.FormatJSON {
		contentType = "application/x-yaml"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=corpus.%s", format))
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Reset the corpus to the seed
// @Tags Corpus
// @Produce json
// @Success 200 {object} statsResp
// @Router /api/v1/corpus [delete]
func (h *handler) ResetCorpus(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Reset(ctx)
	if err != nil {
		h.l.Errorf(ctx, "corpus.delivery.http.ResetCorpus: usecase Reset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatsResp(s))
}
