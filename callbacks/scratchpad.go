package callbacks

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/effective-security/llmtools/catalog"
)

var TimeNowFn = time.Now

// BuildStats summarizes a catalog build.
type BuildStats struct {
	Duration         time.Duration
	ToolsDiscovered  uint32
	InstancesSkipped uint32
	// Classes lists the classes exposing tools, in discovery order
	Classes []string
}

// Scratchpad is a callback handler that records the catalog build
// events and statistics.
type Scratchpad struct {
	mode  Mode
	lock  sync.Mutex
	w     bytes.Buffer
	stats BuildStats
	seen  map[string]bool
}

func NewScratchpad(mode Mode) *Scratchpad {
	return &Scratchpad{
		mode: mode,
		seen: make(map[string]bool),
	}
}

// Stats returns the recorded statistics.
func (l *Scratchpad) Stats() BuildStats {
	l.lock.Lock()
	defer l.lock.Unlock()
	stats := l.stats
	stats.Classes = append([]string(nil), l.stats.Classes...)
	return stats
}

// Bytes returns the recorded output.
func (l *Scratchpad) Bytes() []byte {
	l.lock.Lock()
	defer l.lock.Unlock()
	return bytes.Clone(l.w.Bytes())
}

func (l *Scratchpad) OnToolDiscovered(ctx context.Context, def *catalog.ToolDefinition) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.stats.ToolsDiscovered++
	if !l.seen[def.Class] {
		l.seen[def.Class] = true
		l.stats.Classes = append(l.stats.Classes, def.Class)
	}

	l.print(def.Class, "*** Tool ***", def.Name)
	if l.mode == ModeVerbose {
		l.print(def.Class, printParams(def))
	}
}

func (l *Scratchpad) OnInstanceSkipped(ctx context.Context, instance string, err error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.stats.InstancesSkipped++
	l.print(instance, "*** Skipped ***", err.Error())
}

func (l *Scratchpad) OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.stats.Duration = elapsed
	l.print(fmt.Sprintf("Tools: %d, Classes: %d, Skipped instances: %d",
		tools,
		len(l.stats.Classes),
		l.stats.InstancesSkipped,
	))
	l.print(fmt.Sprintf("*** Catalog Built. Duration: %s ***", elapsed))
}

func printParams(def *catalog.ToolDefinition) string {
	var buf strings.Builder
	buf.WriteString("Parameters:\n")
	for _, p := range def.ParamList() {
		fmt.Fprintf(&buf, "  - [%d] %s", p.Index, p.Name)
		if p.Type != nil && p.Type.Type != "" {
			fmt.Fprintf(&buf, " %s", p.Type.Type)
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// print writes the entries to the output.
// The entries are written in the following format:
// [timestamp] entry entry\n
// The caller must hold the lock.
func (l *Scratchpad) print(entries ...string) {
	ts := TimeNowFn().Format("2006-01-02 15:04:05")

	_, _ = l.w.WriteString(ts)
	_, _ = l.w.WriteString(" ")
	for i, entry := range entries {
		if i > 0 {
			_, _ = l.w.WriteString(" ")
		}
		_, _ = l.w.WriteString(entry)
	}
	_, _ = l.w.WriteString("\n")
}
