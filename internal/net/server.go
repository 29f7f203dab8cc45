package net

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"LocalSketch/internal/board"
	"LocalSketch/internal/config"
	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"github.com/gorilla/websocket"
)

// ClientMessage is sent by a browser host: raw pointer input and tool
// selection.
type ClientMessage struct {
	Type      string  `json:"type"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Color     string  `json:"color,omitempty"`
	Token     string  `json:"token,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
}

// ServerMessage carries a repainted frame, an export, or an error.
type ServerMessage struct {
	Type   string `json:"type"`
	Signal string `json:"signal,omitempty"`
	Image  []byte `json:"image,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server gives every websocket connection its own drawing session.
type Server struct {
	cfg      config.Config
	peers    *PeerManager
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:   cfg,
		peers: NewPeerManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Peers() *PeerManager { return s.peers }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d\n", s.peers.Count())
	})
	return mux
}

// ListenAndServe runs until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Server.Advertise {
		port, err := Port(s.cfg.Server.Addr)
		if err != nil {
			return err
		}
		zone, err := Advertise(port)
		if err != nil {
			return err
		}
		defer zone.Shutdown()
		log.Printf("[MDNS] Advertising %s on port %d", serviceType, port)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.peers.CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WS] Shutdown: %v", err)
		}
	}()

	log.Printf("[WS] Listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", s.cfg.Server.Addr, err)
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	cs := newConnSession(conn, s.cfg)
	peer := &Peer{Conn: conn, SessionID: cs.session.ID}
	s.peers.Add(peer)
	defer s.peers.Remove(peer)

	cs.run()
}

// connSession binds one connection to one session. Everything runs on the
// connection's read goroutine, so the session sees events in arrival order
// and frames are written by a single writer.
type connSession struct {
	conn     *websocket.Conn
	cfg      config.Config
	session  *board.Session
	raster   *surface.Raster
	writeErr error
}

func newConnSession(conn *websocket.Conn, cfg config.Config) *connSession {
	cs := &connSession{
		conn:    conn,
		cfg:     cfg,
		session: board.NewSession(nil, cfg.SessionOptions()),
		raster:  surface.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height, state.ParseColor(cfg.Canvas.Background)),
	}
	coord := board.NewCoordinator(cs.session, cs.raster)
	coord.Attach(cs.session.Bus())
	coord.OnFrame(cs.sendFrame)
	return cs
}

func (cs *connSession) run() {
	addr := cs.conn.RemoteAddr().String()
	for {
		var msg ClientMessage
		if err := cs.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WS] Client %s disconnected: %v", addr, err)
			}
			return
		}
		if cs.cfg.Verbose {
			log.Printf("[WS] Received '%s' from %s", msg.Type, addr)
		}
		if err := cs.dispatch(msg); err != nil {
			cs.send(ServerMessage{Type: "error", Error: err.Error()})
		}
		if cs.writeErr != nil {
			log.Printf("[WS] Write to %s failed: %v", addr, cs.writeErr)
			return
		}
	}
}

func (cs *connSession) dispatch(msg ClientMessage) error {
	s := cs.session
	switch msg.Type {
	case "tool":
		if !(msg.Thickness > 0) {
			return fmt.Errorf("thickness must be positive, got %g", msg.Thickness)
		}
		s.SelectTool(msg.Thickness, msg.Color)
	case "glyph":
		if msg.Token == "" {
			return errors.New("glyph token must not be empty")
		}
		if !surface.CanRender(msg.Token) {
			return fmt.Errorf("glyph token %q has no outline in the label font", msg.Token)
		}
		s.SelectGlyph(msg.Token)
	case "down":
		s.PointerDown(state.Pt(msg.X, msg.Y))
	case "move":
		s.PointerMove(state.Pt(msg.X, msg.Y))
	case "up":
		s.PointerUp()
	case "leave":
		s.PointerLeave()
	case "clear":
		s.Clear()
	case "export":
		scale, w, h := msg.Scale, msg.Width, msg.Height
		if scale == 0 {
			scale = cs.cfg.Export.Scale
		}
		if w == 0 && h == 0 {
			w, h = cs.cfg.Export.Width, cs.cfg.Export.Height
		}
		data, err := s.ExportRaster(scale, w, h)
		if err != nil {
			return err
		}
		cs.send(ServerMessage{Type: "export", Image: data})
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

func (cs *connSession) sendFrame(sig board.Signal) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, cs.raster.Image()); err != nil {
		log.Printf("[WS] Encode frame: %v", err)
		return
	}
	cs.send(ServerMessage{Type: "frame", Signal: sig.String(), Image: buf.Bytes()})
}

func (cs *connSession) send(msg ServerMessage) {
	if cs.writeErr != nil {
		return
	}
	cs.writeErr = cs.conn.WriteJSON(msg)
}
