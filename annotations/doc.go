// Package annotations provides the side table that holds tool metadata attached to methods and method parameters of application types, keyed by an explicit (type, method) pair so it can be read back without the registration call site.
package annotations
