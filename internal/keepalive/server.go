// Package keepalive serves the small HTTP status page that keeps the
// bot from being put to sleep on free-tier hosting.
package keepalive

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"streamcast/internal/command"
	"streamcast/internal/version"
)

var pageTmpl = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>{{.AppName}}</title>
    <style>
      body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; }
      h1 { color: #5865F2; }
      .status { background-color: #2ecc71; color: white; padding: 10px; border-radius: 5px; }
      .commands { margin-top: 20px; }
      .command { background-color: #f5f5f5; padding: 10px; margin-bottom: 10px; border-radius: 5px; }
      .command-name { font-weight: bold; color: #5865F2; }
    </style>
  </head>
  <body>
    <h1>{{.AppName}}</h1>
    <p>The bot is up and running.</p>
    <div class="status">Status: Online</div>
    <p>This page exists to keep the bot awake on free hosting tiers.</p>

    <div class="commands">
      <h2>Available commands:</h2>
      {{range .Commands}}
      <div class="command">
        <span class="command-name">{{$.Prefix}}{{.Name}}</span> - {{.Description}}
      </div>
      {{end}}
    </div>
  </body>
</html>
`))

type pageCommand struct {
	Name        string
	Description string
}

type pageData struct {
	AppName  string
	Prefix   string
	Commands []pageCommand
}

// NewRouter builds the keep-alive routes. Split out from Run so tests
// can drive it with httptest.
func NewRouter(prefix string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		data := pageData{AppName: version.AppName, Prefix: prefix}
		for _, cmd := range command.All() {
			data.Commands = append(data.Commands, pageCommand{Name: cmd.Name(), Description: cmd.Description()})
		}
		sort.Slice(data.Commands, func(i, j int) bool { return data.Commands[i].Name < data.Commands[j].Name })

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			log.Printf("[WARN] Failed to render status page: %v", err)
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, version.Version)
	})

	return r
}

// Run starts the keep-alive server and blocks until it exits or ctx is
// cancelled; run in a goroutine.
func Run(ctx context.Context, port int, prefix string) {
	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{Addr: addr, Handler: NewRouter(prefix)}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down keep-alive server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Keep-alive server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		// Log the error but do NOT call log.Fatal — that would kill the whole process.
		log.Printf("[ERR] Keep-alive server exited: %v", err)
	}
}
