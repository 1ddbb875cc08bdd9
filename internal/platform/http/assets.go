package http

import (
	"embed"
	"net/http"
)

//go:embed assets/*
var content embed.FS

type handler interface {
	Handle(pattern string, h http.Handler)
}

// PublicAssets will register /assets/ and serve all assets in the ./assets folder.
func PublicAssets(mux handler) {
	mux.Handle(
		"/assets/*",
		http.StripPrefix("/", http.FileServer(http.FS(content))),
	)
}
