// Package web embeds the HTML pages and client scripts.
package web

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.html static
var content embed.FS

// Page returns the contents of an HTML page by file name.
func Page(name string) ([]byte, error) {
	return content.ReadFile("pages/" + name)
}

// Static is the file tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
