// Command layersmith-server exposes the composite renderer over HTTP.
//
//	POST /create   {"p": "hoodies/alpine4-black,pants/cargo-darkgreen", "view": "front"}
//	GET  /products cached product listing (JSON passthrough)
//	GET  /health
//	GET  /stats
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recovermw "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/unkn0wn-root/layersmith"
	"github.com/unkn0wn-root/layersmith/internal/bootstrap"
	"github.com/unkn0wn-root/layersmith/internal/config"
	"github.com/unkn0wn-root/layersmith/layer"
	zaplog "github.com/unkn0wn-root/layersmith/log/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := bootstrap.Backend(ctx, cfg)
	if err != nil {
		log.Fatal("storage backend", zap.Error(err))
	}

	renderer, err := layersmith.New(layersmith.Options{
		Backend:       backend,
		Logger:        zaplog.ZapLogger{L: log},
		MemoryEntries: cfg.Cache.MemoryEntries,
		JPEGQuality:   cfg.Cache.JPEGQuality,
	})
	if err != nil {
		log.Fatal("renderer", zap.Error(err))
	}

	app := newApp(renderer, cfg.Server.APIKey, log)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("storage", cfg.Storage.Kind))
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal("listen", zap.Error(err))
	}
}

type createRequest struct {
	Params      string `json:"p"`
	View        string `json:"view"`
	BypassCache bool   `json:"bypass_cache"`
}

func newApp(renderer layersmith.Renderer, apiKey string, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "layersmith",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recovermw.New())
	app.Use(cors.New())
	if apiKey != "" {
		app.Use(requireAPIKey(apiKey))
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/stats", func(c fiber.Ctx) error {
		s := renderer.Stats()
		return c.JSON(fiber.Map{
			"memory_entries":  s.Entries,
			"memory_capacity": s.Capacity,
		})
	})

	app.Get("/products", func(c fiber.Ctx) error {
		doc, ok, err := renderer.ProductsJSON(c.Context())
		if err != nil {
			log.Error("products fetch", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "products unavailable"})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "no product listing cached"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Post("/create", func(c fiber.Ctx) error {
		var req createRequest
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		view := layer.ViewFront
		if req.View != "" {
			v, err := layer.ParseView(req.View)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).
					JSON(fiber.Map{"error": err.Error()})
			}
			view = v
		}

		res, err := renderer.Render(c.Context(), layersmith.RenderRequest{
			View:        view,
			Params:      req.Params,
			BypassCache: req.BypassCache,
		})
		if err != nil {
			log.Error("render",
				zap.String("view", view.String()),
				zap.String("params", req.Params),
				zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "composition failed"})
		}

		c.Set(fiber.HeaderContentType, "image/jpeg")
		c.Set("X-Composite-Key", res.Key)
		if res.Cached {
			c.Set("X-Composite-Cache", "hit")
		} else {
			c.Set("X-Composite-Cache", "miss")
		}
		return c.Send(res.Data)
	})

	return app
}

func requireAPIKey(key string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Get("X-Api-Key") != key {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= 500 {
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	if cfg.File == "" {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build()
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		level,
	)
	return zap.New(core), nil
}
