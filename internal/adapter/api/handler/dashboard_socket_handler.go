package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/message"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/dashboard"
	"smartagri/internal/domain/entity"
	ws "smartagri/internal/infrastructure/websocket"
	"smartagri/internal/live"
	"smartagri/pkg/logger"
)

// ListingDeleter removes an owned record after confirmation.
type ListingDeleter interface {
	Delete(ctx context.Context, identity entity.Identity, collection, id string, confirmed bool) error
}

// DashboardSocketHandler streams the live, role-scoped dashboard. Each
// connection owns its own session holder and subscriptions.
type DashboardSocketHandler struct {
	manager  *ws.Manager
	source   live.Source
	auth     middleware.Authenticator
	deleter  ListingDeleter
	upgrader gorillaws.Upgrader
}

var dashboardSocketHandler *DashboardSocketHandler

func NewDashboardSocketHandler(
	manager *ws.Manager,
	source live.Source,
	auth middleware.Authenticator,
	deleter ListingDeleter,
	allowedOrigins []string,
) *DashboardSocketHandler {
	return &DashboardSocketHandler{
		manager: manager,
		source:  source,
		auth:    auth,
		deleter: deleter,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func SetupDashboardSocketHandler(manager *ws.Manager, source live.Source, auth middleware.Authenticator, deleter ListingDeleter, allowedOrigins []string) {
	dashboardSocketHandler = NewDashboardSocketHandler(manager, source, auth, deleter, allowedOrigins)
}

func GetDashboardSocketHandler() *DashboardSocketHandler {
	return dashboardSocketHandler
}

// An empty allow list accepts every origin.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		return set[r.Header.Get("Origin")]
	}
}

// HandleDashboard upgrades the connection and serves it until the client goes
// away. A token may be given as ?token= to sign in right away; otherwise the
// client sends an auth message.
func (h *DashboardSocketHandler) HandleDashboard(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Dashboard upgrade failed: %v", err)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := newDashboardSession(ctx, h, middleware.PrinterFrom(c))
	client := ws.NewClient(conn, session.handle)
	session.client = client

	if !h.manager.Add(client) {
		logger.Warn("Dashboard manager stopped, refusing connection")
		conn.Close()
		return nil
	}

	logger.Debug("Dashboard connection %s opened", client.ID)

	go client.WritePump()
	go session.render()

	if token := c.QueryParam("token"); token != "" {
		session.signIn(token)
	}

	client.ReadPump(h.manager)

	session.close()
	logger.Debug("Dashboard connection %s closed", client.ID)
	return nil
}

type dashboardSession struct {
	ctx     context.Context
	h       *DashboardSocketHandler
	printer *message.Printer
	client  *ws.Client
	holder  *dashboard.SessionHolder
	ctrl    *dashboard.Controller
	dirty   chan struct{}
	stopped chan struct{}
}

func newDashboardSession(ctx context.Context, h *DashboardSocketHandler, p *message.Printer) *dashboardSession {
	s := &dashboardSession{
		ctx:     ctx,
		h:       h,
		printer: p,
		holder:  dashboard.NewSessionHolder(),
		ctrl:    dashboard.NewController(ctx, h.source),
		dirty:   make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}

	s.holder.OnChange(s.ctrl.IdentityChanged)
	s.ctrl.Aggregate().OnUpdate(func(dashboard.ViewModel) { s.markDirty() })
	s.markDirty()

	return s
}

// markDirty never blocks; pending renders coalesce into one.
func (s *dashboardSession) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

// render pushes the latest view after every change until the session ends.
// A full send queue holds the render back instead of dropping the view, so
// the newest view always reaches the writer.
func (s *dashboardSession) render() {
	for {
		select {
		case <-s.dirty:
			if !s.client.Deliver(ws.Encode(ws.MessageTypeView, s.ctrl.View(s.printer)), s.stopped) {
				return
			}
		case <-s.client.Closed():
			return
		case <-s.stopped:
			return
		}
	}
}

func (s *dashboardSession) handle(_ *ws.Client, msg ws.WSMessage) {
	switch msg.Type {
	case ws.MessageTypeAuth:
		var data ws.AuthData
		if err := msg.Payload(&data); err != nil || data.Token == "" {
			s.client.Queue(ws.ErrorMessage("auth requires a token"))
			return
		}
		s.signIn(data.Token)

	case ws.MessageTypeSignOut:
		s.holder.Clear()

	case ws.MessageTypeDeleteListing:
		var data ws.DeleteListingData
		if err := msg.Payload(&data); err != nil {
			s.client.Queue(ws.ErrorMessage("invalid delete_listing data"))
			return
		}
		s.deleteListing(data)

	default:
		s.client.Queue(ws.ErrorMessage("unknown message type: " + msg.Type))
	}
}

func (s *dashboardSession) signIn(token string) {
	identity, err := s.h.auth.Authenticate(s.ctx, token)
	if err != nil {
		logger.Warn("Dashboard connection %s failed to authenticate: %v", s.client.ID, err)
		s.holder.Clear()
		s.client.Queue(ws.ErrorMessage("invalid or expired token"))
		return
	}
	s.holder.Set(identity)
}

// deleteListing issues the delete and leaves the dashboard as it is; the
// removal shows up with the next snapshot. Failures are only logged.
func (s *dashboardSession) deleteListing(data ws.DeleteListingData) {
	identity, ok := s.holder.Current()
	if !ok {
		logger.Warn("Dashboard connection %s tried to delete %s/%s while signed out", s.client.ID, data.Collection, data.ID)
		return
	}

	if err := s.h.deleter.Delete(s.ctx, identity, data.Collection, data.ID, data.Confirmed); err != nil {
		logger.Warn("Delete of %s/%s by %s failed: %v", data.Collection, data.ID, identity.ID, err)
	}
}

func (s *dashboardSession) close() {
	close(s.stopped)
	s.ctrl.Close()
}
