package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/constants"
)

// Config holds the server-side provider credential and target. The key lives
// only here; clients post keyless payloads.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Server is the same-origin relay: it forwards chat-completion payloads to
// the provider with the server-held bearer key and passes the upstream
// response back verbatim (status and body untouched).
type Server struct {
	cfg        Config
	engine     *gin.Engine
	httpClient *http.Client
	httpServer *http.Server
	logger     *zap.Logger
	forwards   *prometheus.CounterVec
}

func NewServer(cfg Config, logger *zap.Logger) *Server {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}

	forwards := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_forwards_total",
		Help: "Chat completion forwards by upstream status code.",
	}, []string{"status"})
	registry := prometheus.NewRegistry()
	registry.MustRegister(forwards)

	s := &Server{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: constants.RelayConfig.ForwardTimeout,
		},
		logger:   logger,
		forwards: forwards,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	engine.POST("/api/chat", s.handleChat)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

func (s *Server) handleChat(c *gin.Context) {
	if s.cfg.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI_API_KEY is not configured on server"})
		return
	}

	var clientBody map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&clientBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	// Clients never send a model in relayed mode; fill the server default so
	// the upstream request is complete.
	if _, ok := clientBody["model"]; !ok && s.cfg.Model != "" {
		clientBody["model"] = s.cfg.Model
	}

	payload, err := json.Marshal(clientBody)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	url := s.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Upstream forward failed", zap.String("url", url), zap.Error(err))
		s.forwards.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	s.forwards.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	s.logger.Debug("Forwarded chat completion",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	c.Data(resp.StatusCode, "application/json", body)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	s.logger.Info("Relay listening", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("relay server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
