// Package view renders the HTML pages served next to the JSON API.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Route describes one API endpoint on the index page.
type Route struct {
	Method  string
	Path    string
	Summary string
	Auth    bool
}

// HomePage lists the API endpoints. email is shown when a user is signed in.
func HomePage(email string, routes []Route) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Bookshelf API</title>`+
			`<style>body{font-family:sans-serif;max-width:48rem;margin:2rem auto}td,th{padding:.25rem .75rem;text-align:left}code{font-size:.9rem}</style>`+
			`</head><body><h1>Bookshelf API</h1>`); err != nil {
			return err
		}

		status := "<p>Not signed in.</p>"
		if email != "" {
			status = "<p>Signed in as <strong>" + templ.EscapeString(email) + "</strong>.</p>"
		}
		if _, err := io.WriteString(w, status); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table><thead><tr><th>Method</th><th>Path</th><th>Description</th><th>Auth</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, rt := range routes {
			auth := "no"
			if rt.Auth {
				auth = "cookie"
			}
			row := "<tr><td>" + templ.EscapeString(rt.Method) + "</td><td><code>" + templ.EscapeString(rt.Path) +
				"</code></td><td>" + templ.EscapeString(rt.Summary) + "</td><td>" + auth + "</td></tr>"
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></body></html>`)
		return err
	})
}
