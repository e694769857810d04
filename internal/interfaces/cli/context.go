package cli

import (
	"github.com/sanops/zonectl/internal/infrastructure/state"
)

// Context carries the per-invocation settings shared by all subcommands.
type Context struct {
	CatalogPath string
}

func newContext() *Context {
	return &Context{CatalogPath: catalogPath}
}

func (c *Context) catalogStore() *state.CatalogStore {
	return state.NewCatalogStore(c.CatalogPath)
}
