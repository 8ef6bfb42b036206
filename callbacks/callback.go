package callbacks

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/xlog"
)

// ensure that the callbacks implement the correct interfaces
var (
	_ catalog.Callback = (*Noop)(nil)
	_ catalog.Callback = (*Printer)(nil)
	_ catalog.Callback = (*PackageLogger)(nil)
	_ catalog.Callback = (*Fanout)(nil)
	_ catalog.Callback = (*Scratchpad)(nil)
)

// Mode defines the mode for callback printing
type Mode int

const (
	// ModeDefault is the default mode for callback printing
	ModeDefault Mode = iota
	// ModeVerbose is the verbose mode for callback printing
	ModeVerbose
)

// Fanout is a callback handler that forwards the events to multiple callbacks.
type Fanout struct {
	callbacks []catalog.Callback
}

func NewFanout(callbacks ...catalog.Callback) *Fanout {
	return &Fanout{callbacks: callbacks}
}

func (l *Fanout) Add(callback catalog.Callback) {
	l.callbacks = append(l.callbacks, callback)
}

func (l *Fanout) OnToolDiscovered(ctx context.Context, def *catalog.ToolDefinition) {
	for _, callback := range l.callbacks {
		callback.OnToolDiscovered(ctx, def)
	}
}

func (l *Fanout) OnInstanceSkipped(ctx context.Context, instance string, err error) {
	for _, callback := range l.callbacks {
		callback.OnInstanceSkipped(ctx, instance, err)
	}
}

func (l *Fanout) OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration) {
	for _, callback := range l.callbacks {
		callback.OnCatalogBuilt(ctx, tools, elapsed)
	}
}

// Noop does nothing.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (l *Noop) OnToolDiscovered(ctx context.Context, def *catalog.ToolDefinition)    {}
func (l *Noop) OnInstanceSkipped(ctx context.Context, instance string, err error)    {}
func (l *Noop) OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration) {}

// Printer is a callback handler that prints to the Writer.
type Printer struct {
	Out  io.Writer
	Mode Mode

	lock sync.Mutex
}

func NewPrinter(out io.Writer, mode Mode) *Printer {
	return &Printer{Out: out, Mode: mode}
}

func (l *Printer) OnToolDiscovered(ctx context.Context, def *catalog.ToolDefinition) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.Out, "Tool Discovered: %s (%s.%s)\n", def.Name, def.Class, def.Method)
	if l.Mode == ModeVerbose {
		if def.Description != "" {
			fmt.Fprintf(l.Out, "Description: %s\n", def.Description)
		}
		for _, p := range def.ParamList() {
			fmt.Fprintf(l.Out, "  [%d] %s\n", p.Index, p.Name)
		}
	}
}

func (l *Printer) OnInstanceSkipped(ctx context.Context, instance string, err error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.Out, "Instance Skipped: %s: %s\n", instance, err.Error())
}

func (l *Printer) OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.Out, "Catalog Built: %d tools\n", tools)
	if l.Mode == ModeVerbose {
		fmt.Fprintf(l.Out, "Duration: %s\n", elapsed)
	}
}

// PackageLogger is a callback handler that prints to the logger.
type PackageLogger struct {
	logger *xlog.PackageLogger
}

func NewPackageLogger(logger *xlog.PackageLogger) *PackageLogger {
	return &PackageLogger{logger: logger}
}

func (l *PackageLogger) OnToolDiscovered(ctx context.Context, def *catalog.ToolDefinition) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "tool_discovered",
		"tool", def.Name,
		"class", def.Class,
		"method", def.Method,
	)
}

func (l *PackageLogger) OnInstanceSkipped(ctx context.Context, instance string, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"event", "instance_skipped",
		"instance", instance,
		"err", err.Error(),
	)
}

func (l *PackageLogger) OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration) {
	l.logger.ContextKV(ctx, xlog.INFO,
		"event", "catalog_built",
		"tools", tools,
		"elapsed", elapsed.String(),
	)
}
