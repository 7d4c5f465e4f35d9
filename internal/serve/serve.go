package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stellar/go-stellar-sdk/support/log"
	"golang.org/x/sync/errgroup"

	"github.com/stellar/static-responder/internal/apptracker"
	"github.com/stellar/static-responder/internal/apptracker/dryrun"
	"github.com/stellar/static-responder/internal/metrics"
	"github.com/stellar/static-responder/internal/utils"
	"github.com/stellar/static-responder/internal/validators"
)

const (
	DefaultHost              = "127.0.0.1"
	DefaultPort              = 5678
	DefaultReadHeaderTimeout = 10 * time.Second
)

type Configs struct {
	Host string `validate:"listen_host"`
	// Port 0 asks the kernel for a free port.
	Port int `validate:"gte=0,lte=65535"`
	// AdminPort serves /health and /metrics. 0 disables the admin listener.
	AdminPort int `validate:"gte=0,lte=65535"`
	// ReadHeaderTimeout 0 means no timeout. The serve command defaults it to DefaultReadHeaderTimeout.
	ReadHeaderTimeout time.Duration `validate:"gte=0"`
	LogLevel          logrus.Level

	// Stdout receives the startup line. Defaults to os.Stdout.
	Stdout         io.Writer              `validate:"-"`
	AppTracker     apptracker.AppTracker  `validate:"-"`
	MetricsService metrics.MetricsService `validate:"-"`
}

func (cfg Configs) withDefaults() Configs {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.AppTracker == nil {
		cfg.AppTracker = &dryrun.DryRunTracker{}
	}
	if cfg.MetricsService == nil {
		cfg.MetricsService = metrics.NewMetricsService()
	}
	return cfg
}

func (cfg Configs) validate() error {
	err := validators.NewValidator().Struct(cfg)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return fmt.Errorf("invalid configs: %v", validators.ParseValidationError(vErrs))
		}
		return fmt.Errorf("validating configs: %w", err)
	}

	if cfg.AdminPort != 0 && cfg.AdminPort == cfg.Port {
		return fmt.Errorf("admin port %d must differ from the public port", cfg.AdminPort)
	}
	return nil
}

// Server owns the bound public listener and, when enabled, the admin listener.
type Server struct {
	cfg Configs

	listener    net.Listener
	httpServer  *http.Server
	adminServer *http.Server
	adminLn     net.Listener
}

// Listen validates cfg and binds the sockets. Bind failures come back as *BindError.
func Listen(cfg Configs) (*Server, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ln, err := bind(cfg.Host, cfg.Port)
	if err != nil {
		return nil, err
	}

	deps := HandlerDependencies{
		AppTracker:     cfg.AppTracker,
		MetricsService: cfg.MetricsService,
	}
	s := &Server{
		cfg:      cfg,
		listener: ln,
		httpServer: &http.Server{
			Handler:           NewHandler(deps),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}

	if cfg.AdminPort != 0 {
		adminLn, err := bind(cfg.Host, cfg.AdminPort)
		if err != nil {
			_ = ln.Close()
			return nil, err
		}
		deps.PublicAddr = ln.Addr().String()
		deps.StartedAt = time.Now()
		s.adminLn = adminLn
		s.adminServer = &http.Server{
			Handler:           NewAdminHandler(deps),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		}
	}

	return s, nil
}

func bind(host string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// Addr is the bound public address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// AdminAddr is the bound admin address, or nil when the admin listener is disabled.
func (s *Server) AdminAddr() net.Addr {
	if s.adminLn == nil {
		return nil
	}
	return s.adminLn.Addr()
}

// URL is the public URL built from the configured host and the bound port.
func (s *Server) URL() string {
	port := s.cfg.Port
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	return utils.ListenURL(s.cfg.Host, port)
}

// Run serves until ctx is done or a listener fails. Open connections are closed, not drained.
func (s *Server) Run(ctx context.Context) error {
	// Whichever listener stops first takes the other one down with it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return serveUntilClosed(s.httpServer, s.listener)
	})
	if s.adminServer != nil {
		g.Go(func() error {
			defer cancel()
			return serveUntilClosed(s.adminServer, s.adminLn)
		})
	}
	g.Go(func() error {
		<-gCtx.Done()
		s.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// Close stops both listeners immediately.
func (s *Server) Close() {
	_ = s.httpServer.Close()
	_ = s.listener.Close()
	if s.adminServer != nil {
		_ = s.adminServer.Close()
		_ = s.adminLn.Close()
	}
}

func serveUntilClosed(srv *http.Server, ln net.Listener) error {
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Serve binds the configured address, announces it on stdout and serves until ctx is done.
func Serve(ctx context.Context, cfg Configs) error {
	server, err := Listen(cfg)
	if err != nil {
		return fmt.Errorf("starting static responder: %w", err)
	}

	fmt.Fprintf(server.cfg.Stdout, "Server running at %s\n", server.URL())

	fields := log.F{"addr": server.Addr().String()}
	if adminAddr := server.AdminAddr(); adminAddr != nil {
		fields["admin_addr"] = adminAddr.String()
	}
	log.Ctx(ctx).WithFields(fields).Debug("Static responder listening")

	return server.Run(ctx)
}
