package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/logger"
)

// reservedPrefixes are never answered with the SPA index.
var reservedPrefixes = []string{"/api", "/swagger"}

func isReserved(requestPath string) bool {
	for _, prefix := range reservedPrefixes {
		if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
			return true
		}
	}
	return false
}

// registerStatic serves the built frontend from dir. Unknown paths fall back
// to index.html so client-side routes like /projects/42 load the app.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "static", "result", "failed", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "static", "result", "ok", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))
	serveIndex := func(c echo.Context) error {
		// The index references hashed bundles and must be revalidated.
		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.File(indexPath)
	}

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReserved(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return serveIndex(c)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err == nil && !fileInfo.IsDir() {
			if strings.HasPrefix(cleanPath, "assets/") {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		logger.Debug("static fallback", "module", "http", "action", "fetch", "resource", "static", "result", "ok", "path", requestPath)
		return serveIndex(c)
	})
}
