package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"github.com/ryosuke1832/WordSync/internal/config"
	"github.com/ryosuke1832/WordSync/internal/game"
	"github.com/ryosuke1832/WordSync/internal/theme"
	"github.com/ryosuke1832/WordSync/internal/ws"
)

const version = "v1.0.0"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`WordSync - number ordering party game

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables:
  PORT                 Port to listen on (default: 8080)
  THEMES_FILE          Path to an external themes JSON file (optional)
  THEMES_LOCALE        Theme/default-name locale: "ja" or "en" (default: ja)
  REVEAL_INTERVAL_MS   Delay between result reveals in ms (default: 1000)
  DISCUSSION_SECONDS   Initial discussion countdown (default: 180)

Examples:
  %s                  Start server with default settings
  %s --port 3000      Start server on port 3000
`, os.Args[0], os.Args[0], os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("WordSync %s\n", version)
		return
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg, err := config.FromEnv()
	if err != nil {
		zerologlog.Fatal().Err(err).Msg("load config")
	}
	if *portFlag != "" {
		cfg.Port = *portFlag
	}

	// Gin setup with custom logger (skip /socket.io noise)
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		status := c.Writer.Status()
		dur := time.Since(start)
		zerologlog.Info().Str("path", path).Int("status", status).Dur("dur", dur).Msg("http")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	catalog := theme.Load(cfg.ThemesFile, cfg.ThemesLocale)
	session := game.NewSession(cfg.ThemesLocale, game.NewAssigner())

	sock := ws.New(session, catalog, cfg)
	io := sock.Mount(r)
	defer io.Close()

	r.GET("/api/themes", func(c *gin.Context) {
		id := c.Query("category")
		if id != "" {
			c.JSON(http.StatusOK, gin.H{"themes": catalog.ByCategory(id)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"themes": catalog.All()})
	})
	r.GET("/api/themes/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": theme.Categories()})
	})
	r.GET("/api/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, session.Snapshot())
	})

	zerologlog.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		zerologlog.Fatal().Err(err).Msg("server stopped")
	}
}
