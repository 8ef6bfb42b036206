package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsToolsDiscovered is base for counter metric for tools added to the catalog
	StatsToolsDiscovered = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tools_discovered",
		Help:         "stats_tools_discovered provides total tools added to the catalog",
		RequiredTags: []string{"class"},
	}

	// StatsToolInstancesSkipped is base for counter metric for managed instances
	// that could not be scanned for tools
	StatsToolInstancesSkipped = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_instances_skipped",
		Help:         "stats_tool_instances_skipped provides total managed instances skipped by the catalog loader",
		RequiredTags: []string{"instance"},
	}
)

// Perf
var (
	PerfCatalogBuild = metrics.Describe{
		Type: metrics.TypeSample,
		Name: "perf_catalog_build",
		Help: "perf_catalog_build provides duration of the tool catalog build",
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfCatalogBuild,
	&StatsToolInstancesSkipped,
	&StatsToolsDiscovered,
}
