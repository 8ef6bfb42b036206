// Package llmtools wires the tool catalog into a container.
//
//	c := container.New()
//	mod, err := llmtools.ForRoot(c, cfg)
//	...
//	err = c.Init(ctx) // builds mod.Catalog
package llmtools
