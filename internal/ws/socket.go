package ws

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"github.com/ryosuke1832/WordSync/internal/config"
	"github.com/ryosuke1832/WordSync/internal/game"
	"github.com/ryosuke1832/WordSync/internal/theme"
)

// room is the single broadcast group: the engine runs exactly one
// session per process.
const room = "game"

type Server struct {
	session   *game.Session
	scheduler *game.Scheduler
	countdown *game.Countdown
	catalog   *theme.Catalog
	config    config.Config
}

func New(session *game.Session, catalog *theme.Catalog, cfg config.Config) *Server {
	return &Server{
		session:   session,
		scheduler: game.NewScheduler(),
		catalog:   catalog,
		config:    cfg,
	}
}

// Mount attaches the Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	srv.countdown = game.NewCountdown(srv.config.DiscussionSeconds, time.Second, func(remaining int) {
		io.BroadcastToRoom("/", room, "timer:tick", map[string]any{"remaining": remaining})
	}, func() {
		io.BroadcastToRoom("/", room, "timer:done", map[string]any{})
	})

	io.OnConnect("/", func(s socketio.Conn) error {
		s.Join(room)
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		s.Emit("game:state", srv.session.Snapshot())
		return nil
	})

	io.OnEvent("/", "game:setPlayerCount", func(s socketio.Conn, payload struct {
		Count int `json:"count"`
	}) map[string]any {
		if err := srv.session.SetPlayerCount(payload.Count); err != nil {
			return srv.err(s, err)
		}
		log.Info().Int("count", payload.Count).Msg("game:setPlayerCount")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:setPlayerNames", func(s socketio.Conn, payload struct {
		Names []string `json:"names"`
	}) map[string]any {
		if err := srv.session.SetPlayerNames(payload.Names); err != nil {
			return srv.err(s, err)
		}
		log.Info().Int("players", len(payload.Names)).Msg("game:setPlayerNames")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:selectTheme", func(s socketio.Conn, payload struct {
		ThemeID string `json:"themeId"`
		Theme   string `json:"theme"`
		Metric  string `json:"metric"`
	}) map[string]any {
		var t game.Theme
		if payload.ThemeID != "" {
			found, ok := srv.catalog.Find(payload.ThemeID)
			if !ok {
				return srv.errCode(s, "theme_not_found", "unknown theme id")
			}
			t = found
		} else {
			t = game.CustomTheme(payload.Theme, payload.Metric)
		}
		if err := srv.session.SelectTheme(t); err != nil {
			return srv.err(s, err)
		}
		log.Info().Str("themeId", t.ID).Msg("game:selectTheme")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:confirmNumbers", func(s socketio.Conn) map[string]any {
		if err := srv.session.ConfirmNumbers(); err != nil {
			return srv.err(s, err)
		}
		srv.countdown.Reset()
		log.Info().Msg("game:confirmNumbers")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:beginResults", func(s socketio.Conn) map[string]any {
		if err := srv.session.BeginResultInput(); err != nil {
			return srv.err(s, err)
		}
		srv.countdown.Pause()
		log.Info().Msg("game:beginResults")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:submitOrder", func(s socketio.Conn, payload struct {
		Order []string `json:"order"`
	}) map[string]any {
		if err := srv.session.SubmitOrder(payload.Order); err != nil {
			return srv.err(s, err)
		}
		reveals, err := srv.session.Reveals()
		if err != nil {
			return srv.err(s, err)
		}
		log.Info().Int("positions", len(reveals)).Msg("game:submitOrder")
		srv.broadcastState(io)
		srv.scheduler.Start(reveals, srv.config.RevealInterval(), func(ev game.RevealEvent) {
			io.BroadcastToRoom("/", room, "game:reveal", ev)
		}, func() {
			result, err := srv.session.FinalResult()
			if err != nil {
				log.Error().Err(err).Msg("summary unavailable")
				return
			}
			io.BroadcastToRoom("/", room, "game:summary", result)
		})
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:restart", func(s socketio.Conn) map[string]any {
		if err := srv.session.RestartSameMembers(); err != nil {
			return srv.err(s, err)
		}
		srv.scheduler.Cancel()
		srv.countdown.Reset()
		log.Info().Msg("game:restart")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "game:reset", func(s socketio.Conn) map[string]any {
		srv.session.ResetGame()
		srv.scheduler.Cancel()
		srv.countdown.Reset()
		log.Info().Msg("game:reset")
		srv.broadcastState(io)
		return map[string]any{"ok": true}
	})

	io.OnEvent("/", "timer:start", func(s socketio.Conn) map[string]any {
		srv.countdown.Start()
		return map[string]any{"remaining": srv.countdown.Remaining()}
	})

	io.OnEvent("/", "timer:pause", func(s socketio.Conn) map[string]any {
		srv.countdown.Pause()
		return map[string]any{"remaining": srv.countdown.Remaining()}
	})

	io.OnEvent("/", "timer:reset", func(s socketio.Conn) map[string]any {
		srv.countdown.Reset()
		return map[string]any{"remaining": srv.countdown.Remaining()}
	})

	io.OnEvent("/", "timer:adjust", func(s socketio.Conn, payload struct {
		Seconds int `json:"seconds"`
	}) map[string]any {
		if err := srv.countdown.Adjust(payload.Seconds); err != nil {
			return srv.errCode(s, "timer_running", err.Error())
		}
		return map[string]any{"remaining": srv.countdown.Remaining()}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go io.Serve()

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

func (srv *Server) broadcastState(io *socketio.Server) {
	io.BroadcastToRoom("/", room, "game:state", srv.session.Snapshot())
}

func (srv *Server) err(s socketio.Conn, err error) map[string]any {
	var verr *game.ValidationError
	if errors.As(err, &verr) {
		return srv.errCode(s, verr.Key, verr.Key)
	}
	var ierr *game.InvariantError
	if errors.As(err, &ierr) {
		log.Error().Err(ierr).Msg("invariant violation")
		return srv.errCode(s, "invariant_violation", ierr.Error())
	}
	return srv.errCode(s, "bad_request", err.Error())
}

func (srv *Server) errCode(s socketio.Conn, code, message string) map[string]any {
	s.Emit("error", map[string]any{"code": code, "message": message})
	return map[string]any{"error": message}
}
