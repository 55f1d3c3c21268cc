// Package web embeds the minimal browser shell served next to the JSON
// API. All puzzle logic lives server-side; this is presentation only.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// StaticFS returns the embedded /static asset tree.
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static assets: %w", err)
	}
	return http.FS(sub), nil
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return tmpl, nil
}
