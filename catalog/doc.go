// Package catalog builds the flat list of tools exposed to an LLM.
//
// A Loader runs once, when the host application is ready. It walks the
// managed instances reported by a Discovery, providers first and
// controllers second, reads the tool annotations recorded for their
// methods, and appends one ToolDefinition per annotated method to the
// Catalog. The catalog is sealed after the pass.
package catalog
