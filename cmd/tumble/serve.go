package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/platform/tui"
	"github.com/vovakirdan/tumble/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tumble SSH server",
	Long: `Start an SSH server that lets users connect and build boards remotely.

Each SSH connection gets its own board and marbles. A visitor's board is
autosaved under their user name and restored when they reconnect.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config
  - If neither is set, auto-generates a key at ~/.tumble/host_key

Examples:
  tumble serve                           # Listen on the configured port
  tumble serve --ssh :2222               # Listen on port 2222
  tumble serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Start the HTTP share API",
	Long: `Serve share codes over HTTP.

Routes:
  GET  /healthz            - Liveness check
  GET  /api/boards/{code}  - Board as JSON
  POST /api/run            - Run a board: {"code", "color", "max_steps"}
  GET  /b/{code}           - Board as plain text

Examples:
  tumble share
  tumble share --http :9090`,
	Run: runShare,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	shareCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "tumble-ssh")

	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	defer store.Close()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = net.JoinHostPort(cfg.SSH.Host, strconv.Itoa(cfg.SSH.Port))
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	sshCfg.HostKeyPath = flagHostKey
	if sshCfg.HostKeyPath == "" && cfg.SSH.HostKey != "" {
		if sshCfg.HostKeyPath, err = config.ExpandHome(cfg.SSH.HostKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.Topology = t
	sshCfg.Marbles = codec.Marbles{Blue: cfg.Marbles.Blue, Red: cfg.Marbles.Red}
	sshCfg.Runtime = core.RuntimeConfig{
		Speed:    cfg.Sim.Speed,
		MaxSteps: cfg.Sim.MaxSteps,
		BaseURL:  cfg.HTTP.BaseURL,
	}

	server, err := tui.NewSSHServer(sshCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	_, port, _ := net.SplitHostPort(server.Addr())
	fmt.Printf("Starting tumble SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
	}
}

func runShare(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "tumble-http")

	t, err := cfg.Topology()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := cfg.HTTP.Addr
	if flagHTTPAddr != "" {
		addr = flagHTTPAddr
	}
	server := web.NewServer(web.Config{
		Addr:           addr,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Topology:       t,
		MaxSteps:       cfg.Sim.MaxSteps,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
