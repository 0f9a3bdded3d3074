// Command appconsole-service runs the service side of the remote
// console protocol: it advertises an instance, accepts connections,
// serves the command catalog, and dispatches executeCommand
// invocations to registered handlers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apparata/appconsole/adminrpc"
	"github.com/apparata/appconsole/catalog"
	"github.com/apparata/appconsole/config"
	"github.com/apparata/appconsole/discovery"
	"github.com/apparata/appconsole/frame"
	"github.com/apparata/appconsole/handler"
	"github.com/apparata/appconsole/observability"
	"github.com/apparata/appconsole/parser"
	"github.com/apparata/appconsole/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.BoolVar(verbose, "verbose", false, "verbose logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: appconsole-service [-v|--verbose] <instanceName>")
		os.Exit(1)
	}
	instanceName := flag.Arg(0)

	cfg := config.DefaultServiceConfig()
	cfg.InstanceName = instanceName
	cfg.Verbose = *verbose

	logger := log.New(os.Stderr, "appconsole-service: ", log.LstdFlags)
	sessionLogger := session.DefaultLogger()
	if !cfg.Verbose {
		sessionLogger = session.NoopLogger()
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	if cfg.TraceCollector != "" {
		shutdown, err := observability.InitTracer(context.Background(), "appconsole-service", cfg.TraceCollector)
		if err != nil {
			logger.Printf("tracing disabled: %v", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	doc := builtinCatalog()
	handlers := builtinHandlers()

	ln, err := frame.Listen(cfg.ListenAddr)
	if err != nil {
		logger.Fatalf("listening on %s: %v", cfg.ListenAddr, err)
	}

	advertiser := discovery.NewRegistry()
	if err := advertiser.Advertise(discovery.Instance{Name: instanceName, Addr: ln.Addr()}); err != nil {
		logger.Fatalf("advertising %s: %v", instanceName, err)
	}

	svc := session.NewService(doc, handlers, session.HostInfo{Name: instanceName, Version: "1"}, sessionLogger)
	svc.Metrics = metrics

	admin := adminrpc.NewServer(svc.Connections(), doc, logger)
	admin.Handlers = handlers
	admin.Metrics = metrics
	adminMux := http.NewServeMux()
	adminMux.Handle("/", admin.Handler())
	adminMux.Handle("/metrics", promhttp.Handler())
	adminServer := &http.Server{Addr: cfg.MetricsAddr, Handler: adminMux}

	go func() {
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("admin server stopped: %v", err)
		}
	}()

	go func() {
		if err := svc.Serve(ln); err != nil {
			logger.Printf("serve loop stopped: %v", err)
		}
	}()

	logger.Printf("listening on %s as %q", ln.Addr(), instanceName)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Printf("shutting down")
	ln.Cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	adminServer.Shutdown(ctx)
}

func builtinCatalog() *catalog.Document {
	root := &catalog.Command{
		Name:        "echo",
		Description: "Echo a line of text back to the client.",
		Context: catalog.Context{
			Arguments: &catalog.ArgumentsContext{
				Inputs: []*catalog.Input{
					{Name: "text", DataType: catalog.DataTypeString},
				},
				IsLastInputVariadic: true,
			},
		},
	}
	return &catalog.Document{
		Version:  catalog.Version,
		Commands: []*catalog.Command{catalog.WithHelp(root)},
	}
}

func builtinHandlers() *handler.Registry {
	registry := handler.NewRegistry()
	registry.Register(&handler.Definition{
		Key:         "echo",
		Description: "Echo a line of text back to the client.",
		Handler: func(ctx context.Context, inv *parser.Invocation) (handler.Result, error) {
			words, _ := inv.Arguments["text"].(catalog.SliceValue)
			text := ""
			for i, w := range words {
				if i > 0 {
					text += " "
				}
				if sv, ok := w.(catalog.StringValue); ok {
					text += sv.String()
				}
			}
			return handler.Result{Output: text}, nil
		},
	})
	return registry
}
