package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/companieshouse/orders-web/internal/config"
	"github.com/companieshouse/orders-web/internal/format"
	"github.com/companieshouse/orders-web/internal/logging"
	"github.com/companieshouse/orders-web/internal/mappers"
	mw "github.com/companieshouse/orders-web/internal/middleware"
	"github.com/companieshouse/orders-web/internal/orders"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: ORDERS_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	appCfg       config.Config
	appLogger    *zap.Logger
	ordersClient *orders.Client
	mapperCfg    mappers.Config
)

func main() {
	var (
		addr     string
		tmplPath string
		pubPath  string
	)

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	appCfg = cfg
	devMode = cfg.DevMode
	mapperCfg = mappers.Config{DispatchDays: cfg.DispatchDays, Flags: cfg.Flags}

	flag.StringVar(&addr, "addr", ":"+cfg.Port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	appLogger = logger
	format.SetLogger(logger)

	ordersClient = orders.NewClient(cfg.OrdersAPIURL)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("orders-web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Session)
	r.Use(mw.Auth)
	r.Use(mw.CSRF)
	if appLogger != nil {
		r.Use(mw.Logger(appLogger))
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), "/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/signin", SignInHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireSignIn)
		r.Get("/basket", BasketHandler)
		r.Post("/basket/checkout", CheckoutRedirectHandler)
		r.Get("/delivery-details", DeliveryDetailsHandler)
		r.Get("/orders/{orderID}", OrderSummaryHandler)
		r.Get("/orders/{orderID}/confirmation", ConfirmationHandler)
		r.Get("/orders/{orderID}/items/{itemID}", ItemSummaryHandler)
	})

	// The basket is the natural landing page for the service.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/basket", http.StatusFound)
	})

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":      time.Now,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// renderPage executes the named page template. In dev mode, templates are
// reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
