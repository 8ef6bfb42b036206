// Package schema describes Go types with JSON schemas, used as the type descriptors of tool parameters.
package schema
