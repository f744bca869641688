package main

import (
	"net/http"
	"net/http/cgi"
	"os"
	"path"
	"slices"
	"strings"

	"ProfileCards_WebProject/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cgiCmd = &cobra.Command{
	Use:   "cgi [endpoint]",
	Short: "Handle a single CGI request on stdin/stdout",
	Long: "Handle a single CGI request. The endpoint (profile, upload, ...) is taken from the argument,\n" +
		"then from SCRIPT_NAME, then from PATH_INFO.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := ""
		if len(args) == 1 {
			endpoint = args[0]
		}
		return runCGI(endpoint)
	},
}

// runCGI serves exactly one request. stdout belongs to the CGI response, so
// gin's own writers are moved to stderr.
func runCGI(endpoint string) error {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = os.Stderr
	gin.DefaultErrorWriter = os.Stderr

	a, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	// 요청 하나만 처리하므로 rate limit은 의미가 없음
	router := handler.NewRouter(a.handler, handler.RouterOptions{CORSOrigins: cfg.CORSOrigins})

	return cgi.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := resolveCGIPath(endpoint, os.Getenv("SCRIPT_NAME"), os.Getenv("PATH_INFO"), r.URL.Path)
		logger.Debug("cgi request", zap.String("method", r.Method), zap.String("path", p))
		r.URL.Path = p
		r.URL.RawPath = ""
		router.ServeHTTP(w, r)
	}))
}

// resolveCGIPath maps a CGI invocation onto a router path. An explicit
// endpoint wins, then a known script name (with or without .py), then
// PATH_INFO. Anything else keeps the current path.
func resolveCGIPath(endpoint, scriptName, pathInfo, current string) string {
	known := handler.ScriptNames()

	if endpoint != "" {
		// "profile", "profile.py" or a script path such as "cgi_bin/profile.py"
		trimmed := strings.Trim(endpoint, "/")
		if !strings.Contains(trimmed, "/") || strings.HasSuffix(trimmed, ".py") {
			name := strings.TrimSuffix(path.Base(trimmed), ".py")
			if slices.Contains(known, name) {
				return "/cgi_bin/" + name
			}
		}
		return "/" + strings.TrimLeft(endpoint, "/")
	}

	if scriptName != "" {
		base := path.Base(scriptName)
		name := strings.TrimSuffix(base, path.Ext(base))
		if slices.Contains(known, name) {
			return "/cgi_bin/" + name
		}
	}

	if pathInfo != "" {
		return "/" + strings.TrimLeft(pathInfo, "/")
	}
	if current == "" {
		return "/"
	}
	return current
}
