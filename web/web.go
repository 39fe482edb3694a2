// Package web holds the dashboard template and its static assets.
package web

import "embed"

//go:embed index.html static/*
var FS embed.FS
