package app

import (
	"context"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs the configuration keys the application read and which of them fell back to defaults.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect writes a one-line summary of the introspection report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	var defaults []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults = append(defaults, c.Key)
		}
	}
	slices.Sort(defaults)
	defaults = slices.Compact(defaults)

	logger.Printf("ReportLoggerIntrospector: configs=%d defaults=[%s]", len(r.Configs), strings.Join(defaults, ","))
	return nil
}
