package site

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns an http.FileSystem rooted at the embedded static directory.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Asset returns the content of one embedded static file.
func Asset(name string) (string, error) {
	b, err := staticFS.ReadFile("static/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAsset, err)
	}
	return string(b), nil
}
