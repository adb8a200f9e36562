package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/batch"
	"github.com/LikeLion-13th-SKHU/LikeLion-13th-TEAM06-AI/internal/model"
)

type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, articles []model.ArticleInput) ([]model.ArticleResult, error)
}

type ClassifyHandler struct {
	classifier BatchClassifier
	modelName  string
}

func NewClassifyHandler(classifier BatchClassifier, modelName string) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier, modelName: modelName}
}

// Classify accepts {"items":[...]}, runs the batch synchronously and
// returns the ordered result array. Malformed input is a 400; a client
// disconnect abandons in-flight provider calls without a response body.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.Error("error reading request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable request body"})
		return
	}

	articles, err := batch.DecodeItems(body)
	if err != nil {
		slog.Warn("rejected malformed batch input", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.classifier.ClassifyBatch(c.Request.Context(), articles)
	if err != nil {
		// Request context cancelled; nobody is listening for the reply.
		slog.Warn("batch cancelled", "error", err)
		c.AbortWithStatus(http.StatusRequestTimeout)
		return
	}

	c.JSON(http.StatusOK, toClassifyResponse(results))
}

func (h *ClassifyHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"model":  h.modelName,
	})
}
