package main

import (
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "svw.info/sudokusolve/internal/adapters/http"
	"svw.info/sudokusolve/internal/hint"
	"svw.info/sudokusolve/internal/infrastructure/storage"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solving JSON API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("persist-path", "./data", "save directory")
	serveCmd.Flags().String("solver", "constraint", "solver to use: constraint|backtrack")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("persist-path", serveCmd.Flags().Lookup("persist-path"))
	rootCmd.AddCommand(serveCmd)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := viper.GetString("addr")
	persist := viper.GetString("persist-path")
	if err := os.MkdirAll(persist, 0o755); err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("solver")
	s := pickSolver(kind)

	// Wire providers -> use cases -> HTTP adapter
	uc := usecase.NewService(s, validator.New(), hint.NewSingles(), storage.NewFS(persist))
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logrus.WithFields(logrus.Fields{"addr": addr, "persist": persist, "solver": kind}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
