package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/huric/internal/core"
	"github.com/agenthands/huric/internal/core/graph"
	"github.com/agenthands/huric/internal/core/language"
	"github.com/agenthands/huric/internal/core/model"
	"github.com/agenthands/huric/internal/core/vocabulary"
)

const dotContentType = "text/vnd.graphviz; charset=utf-8"

type Server struct {
	Huric *core.Huric
}

func NewServer(h *core.Huric) *Server {
	return &Server{Huric: h}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/head", s.SemanticHead)
	r.POST("/head/lemma", s.SemanticHeadLemma)
	r.POST("/lemma", s.Lemmatize)

	r.GET("/vocabulary", s.Categories)
	r.GET("/vocabulary/:category", s.Values)

	r.POST("/graph", s.BuildGraph)
	r.POST("/graph/normalize", s.Normalize)
	r.POST("/graph/roots", s.Roots)
	r.GET("/graph/:group", s.GroupGraph)

	return r
}

type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

type WordRequest struct {
	Word string `json:"word" binding:"required"`
}

func (s *Server) SemanticHead(c *gin.Context) {
	if !s.languageReady(c) {
		return
	}
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	head, err := s.Huric.Language.SemanticHead(c.Request.Context(), req.Text)
	if err != nil {
		languageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"head": head})
}

func (s *Server) SemanticHeadLemma(c *gin.Context) {
	if !s.languageReady(c) {
		return
	}
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	lemma, err := s.Huric.Language.SemanticHeadLemmatize(c.Request.Context(), req.Text)
	if err != nil {
		languageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lemma": lemma})
}

func (s *Server) Lemmatize(c *gin.Context) {
	if !s.languageReady(c) {
		return
	}
	var req WordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lemma": s.Huric.Language.Lemmatize(req.Word)})
}

func (s *Server) languageReady(c *gin.Context) bool {
	if s.Huric.Language == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Language utilities not configured"})
		return false
	}
	return true
}

func languageError(c *gin.Context, err error) {
	if errors.Is(err, language.ErrNoSentence) || errors.Is(err, language.ErrNoRoot) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Failed to parse text: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse text"})
}

func (s *Server) Categories(c *gin.Context) {
	if s.Huric.Vocabulary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Vocabulary not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": s.Huric.Vocabulary.Categories()})
}

func (s *Server) Values(c *gin.Context) {
	if s.Huric.Vocabulary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Vocabulary not loaded"})
		return
	}

	values, err := s.Huric.Vocabulary.Values(c.Param("category"))
	if errors.Is(err, vocabulary.ErrUnknownCategory) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": values})
}

type GraphRequest struct {
	Edges []model.Edge `json:"edges"`
	// Format is "dot" (default) or "json".
	Format  string `json:"format"`
	Persist bool   `json:"persist"`
	GroupID string `json:"group_id"`
}

func (s *Server) BuildGraph(c *gin.Context) {
	var req GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Persist && req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_id is required to persist"})
		return
	}

	if req.Persist {
		if _, err := s.Huric.PublishGraph(c.Request.Context(), req.GroupID, req.Edges); err != nil {
			log.Printf("Failed to publish graph: %v", err)
			status := http.StatusInternalServerError
			if errors.Is(err, core.ErrNoStore) {
				status = http.StatusServiceUnavailable
			}
			c.JSON(status, gin.H{"error": "Failed to publish graph"})
			return
		}
	}

	renderGraph(c, s.Huric.BuildGraph(req.Edges), req.Format)
}

func (s *Server) GroupGraph(c *gin.Context) {
	g, err := s.Huric.LoadGraph(c.Request.Context(), c.Param("group"))
	if err != nil {
		log.Printf("Failed to load graph: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrNoStore) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "Failed to load graph"})
		return
	}
	renderGraph(c, g, c.Query("format"))
}

func renderGraph(c *gin.Context, g *graph.Graph, format string) {
	switch format {
	case "json":
		c.JSON(http.StatusOK, g)
	case "", "dot":
		c.Data(http.StatusOK, dotContentType, []byte(g.DOT()))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format: " + format})
	}
}

type EdgesRequest struct {
	Edges []model.Edge `json:"edges"`
}

func (s *Server) Normalize(c *gin.Context) {
	var req EdgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"edges": s.Huric.NormalizeEdges(req.Edges)})
}

func (s *Server) Roots(c *gin.Context) {
	var req EdgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	roots := s.Huric.Roots(req.Edges)
	if roots == nil {
		roots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"roots": roots})
}
