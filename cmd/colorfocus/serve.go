package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/colorfocus/internal/adapters/http"
	"svw.info/colorfocus/internal/analyzer"
	"svw.info/colorfocus/internal/classifier"
	"svw.info/colorfocus/internal/config"
	"svw.info/colorfocus/internal/domain"
	"svw.info/colorfocus/internal/generator"
	"svw.info/colorfocus/internal/infrastructure/storage"
	"svw.info/colorfocus/internal/metrics"
	"svw.info/colorfocus/internal/palette"
	"svw.info/colorfocus/internal/ports"
	"svw.info/colorfocus/internal/usecase"
	"svw.info/colorfocus/internal/validator"
	"svw.info/colorfocus/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the puzzle HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger := newLogger(cfg.LogLevel)

		pal, err := palette.Load()
		if err != nil {
			return err
		}

		var hist ports.History
		switch cfg.Store.Kind {
		case "fs":
			hist = storage.NewFS(cfg.Store.Path)
		default:
			db, err := storage.NewSQLite(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			hist = db
		}

		// Wire providers → use cases → HTTP adapter
		gen := generator.NewBalanced(validator.New(), logger)
		ana := analyzer.New(logger)
		rules := classifier.New()
		uc := usecase.NewService(gen, ana, rules, hist)
		met := metrics.New()
		h := httpadapter.NewHandlers(uc, pal, rules, met, httpadapter.Defaults{
			GridSize:          cfg.Generator.GridSize,
			ColorCount:        cfg.Generator.ColorCount,
			CongruencePercent: cfg.Generator.CongruencePercent,
			Language:          domain.ParseLanguage(cfg.Language),
		}, logger)

		tmpl, err := web.Templates()
		if err != nil {
			return err
		}
		staticFS, err := web.StaticFS()
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery(), httpadapter.RequestLogger(logger))
		router.SetHTMLTemplate(tmpl)
		router.StaticFS("/static", staticFS)
		router.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.tmpl", gin.H{})
		})
		router.GET("/healthz", h.HandleHealth)
		router.GET("/metrics", gin.WrapH(met.Handler()))
		httpadapter.RegisterRoutes(router.Group("/api/v1"), h)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening", "addr", cfg.Addr, "store", cfg.Store.Kind, "language", cfg.Language)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
