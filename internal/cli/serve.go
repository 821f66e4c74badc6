package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termplot/pkg/buildinfo"
	"github.com/matzehuels/termplot/pkg/cache"
	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/observability"
	"github.com/matzehuels/termplot/pkg/pipeline"
	"github.com/matzehuels/termplot/pkg/scene"
)

const (
	requestIDHeader = "X-Request-Id"
	shutdownTimeout = 5 * time.Second
)

// serveCommand runs an HTTP endpoint that renders posted scenes.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scene rendering over HTTP",
		Long: `Start an HTTP server. POST a TOML or JSON scene to /render and the
rendered text comes back as text/plain. Query parameters width, height,
plain and format override the request defaults.`,
		Example: `  termplot serve --listen :8372
  curl --data-binary @status.toml localhost:8372/render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			store, err := c.serveCache(cmd.Context())
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(store, versionKeyer(), logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:              c.config.listen(),
				Handler:           newServeHandler(runner, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return listenAndServe(cmd.Context(), srv, logger)
		},
	}

	cmd.Flags().String(keyListen, pipeline.DefaultListen, "address to listen on")
	cmd.Flags().String(keyRedis, "", "share the render cache through redis, e.g. redis://localhost:6379/0")
	return cmd
}

// serveCache picks the server's render cache: redis when configured,
// otherwise a bounded in-process map.
func (c *CLI) serveCache(ctx context.Context) (cache.Cache, error) {
	url := c.config.redisURL()
	if url == "" {
		return cache.NewMemoryCache(cache.DefaultMemoryEntries), nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	store, err := cache.NewRedisCache(ctx, url)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("using redis render cache")
	return store, nil
}

// listenAndServe runs srv until ctx is canceled, then shuts it down.
func listenAndServe(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	prog := newProgress(logger)
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", srv.Addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	prog.done("server stopped", "addr", srv.Addr)
	return nil
}

// newServeHandler builds the router for the serve command.
func newServeHandler(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Post("/render", renderHandler(runner))
	return r
}

// requestID tags each request with a fresh id, echoed in the response
// header and in the access log line.
func requestID(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(requestIDHeader, id)
			w.Header().Set("Server", buildinfo.Product(appName))
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

			next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), logger.With("request", id))))

			observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start).Round(time.Microsecond))
		})
	}
}

func renderHandler(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, format, err := renderRequestOptions(r)
		if err != nil {
			writeError(w, err)
			return
		}

		data, err := io.ReadAll(io.LimitReader(r.Body, pipeline.MaxSceneBytes+1))
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
			return
		}
		s, err := runner.Decode(r.Context(), data, format)
		if err != nil {
			writeError(w, err)
			return
		}
		res, err := runner.RenderScene(r.Context(), s, opts)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Termplot-Size", strconv.Itoa(res.Width)+"x"+strconv.Itoa(res.Height))
		if res.Cached {
			w.Header().Set("X-Termplot-Cache", "hit")
		}
		_, _ = io.WriteString(w, res.Output+"\n")
	}
}

// renderRequestOptions reads the query parameters of a render request.
func renderRequestOptions(r *http.Request) (pipeline.Options, scene.Format, error) {
	q := r.URL.Query()
	var opts pipeline.Options

	format := scene.FormatTOML
	if v := q.Get("format"); v != "" {
		f, err := scene.ParseFormat(v)
		if err != nil {
			return opts, "", err
		}
		format = f
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", p.name, v)
		}
		*p.dst = n
	}

	if v := q.Get("plain"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, "", errors.New(errors.ErrCodeInvalidInput, "plain must be a boolean, got %q", v)
		}
		opts.Plain = b
	}
	return opts, format, nil
}

type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(code))
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Error: err.Error()})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case "", errors.ErrCodeInternal:
		return http.StatusInternalServerError
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
