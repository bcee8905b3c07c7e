package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	httpapi "ovpnapi/internal/api/http"
	audithttp "ovpnapi/internal/api/http/audit"
	"ovpnapi/internal/api/http/logger"
	"ovpnapi/internal/core/audit"
	"ovpnapi/internal/core/bundle"
	"ovpnapi/internal/core/client"
	"ovpnapi/internal/env"
	"ovpnapi/internal/runtime/ovpnctl"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", os.Getenv("OVPNAPI_CONFIG"), "path to YAML config file")
	flag.Parse()

	// == config ==
	cfg, err := env.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// == bootstrap ==
	bootstrap := env.NewBootstrapManager(cfg)
	if err := bootstrap.SetupRuntime(); err != nil {
		log.Fatal(err)
	}
	if created, err := bootstrap.SetupTLS(); err != nil {
		log.Fatal(err)
	} else if created {
		log.Printf("[*] generated self-signed certificate %s", cfg.TLSCert)
	}
	if ctlPath, err := bootstrap.CheckCtl(); err != nil {
		log.Printf("[!] %v", err)
	} else {
		log.Printf("[*] using %s", ctlPath)
	}

	timeouts, err := cfg.ClientTimeouts()
	if err != nil {
		log.Fatal(err)
	}

	// == audit log ==
	var auditOut io.Writer = os.Stdout
	if cfg.AuditLogPath != "" {
		f, err := os.OpenFile(cfg.AuditLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		auditOut = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// == bridge ==
	var lock *ovpnctl.InvocationLock
	if cfg.SerializeInvocations {
		lock = ovpnctl.NewInvocationLock(cfg.LockPath)
		log.Printf("[*] serializing openvpn-ctl invocations via %s", cfg.LockPath)
	}
	environ := ovpnctl.BuildEnvironment(os.Environ(), cfg.OutputDir)
	ctlHandler := ovpnctl.NewCtlHandler(cfg.OpenvpnCtl, environ, lock)
	clientService := client.NewClientService(ctlHandler, cfg.OutputDir, timeouts)

	// == bundle index ==
	bundleIndex := bundle.NewBundleIndex(cfg.OutputDir)
	go func() {
		if err := bundleIndex.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[!] bundle watcher stopped: %v", err)
		}
	}()

	// == rest api ==
	hostname, _ := os.Hostname()
	handler := httpapi.NewRequestHandler(clientService, bundleIndex)
	auditHandler := audithttp.NewRequestHandler(audit.NewAuditService(cfg.AuditLogPath))
	apiRouter := httpapi.NewApiRouter(handler, auditHandler, logger.NewJsonLineLogger(auditOut), hostname)
	// with serialization a request may wait up to its timeout for the lock
	// and then run for as long again, plus the kill grace period
	writeTimeout := 2*timeouts.Max() + 10*time.Second
	apiSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           apiRouter,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS13,
		},
	}
	go func() {
		log.Printf("[*] api server listening on %s", cfg.ListenAddr)
		if err := serve(apiSrv, cfg); err != nil {
			log.Fatal(err)
		}
	}()

	// start Swagger
	var swaggerSrv *http.Server
	if cfg.SwaggerAddr != "" {
		swaggerSrv = &http.Server{
			Addr:              cfg.SwaggerAddr,
			Handler:           httpapi.NewSwaggerRouter(),
			ReadHeaderTimeout: 5 * time.Second,
			TLSConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
		}
		go func() {
			log.Printf("[*] swagger listening on %s", cfg.SwaggerAddr)
			if err := serve(swaggerSrv, cfg); err != nil {
				log.Fatal(err)
			}
		}()
	}

	<-ctx.Done()
	log.Println("[*] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[!] api server shutdown: %v", err)
	}
	if swaggerSrv != nil {
		if err := swaggerSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[!] swagger shutdown: %v", err)
		}
	}
}

func serve(srv *http.Server, cfg *env.Config) error {
	var err error
	if cfg.TLSEnabled() {
		err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
	} else {
		err = srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
