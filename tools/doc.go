// Package tools marks methods of application types as LLM tools and describes their parameters. Marks are recorded in an annotations.Store at definition time, usually from a package init, and collected later by the catalog loader.
package tools
