// Package statscollector exports handler statistics as Prometheus
// metrics.
//
// A Collector reads the Stats snapshot of every registered handler at
// scrape time, so handlers pay nothing extra on the write path:
//
//	c := statscollector.New("myapp")
//	c.Add("console", consoleHandler)
//	c.Add("file", fileHandler)
//	prometheus.MustRegister(c)
//
// Two counter families are exported, labelled by handler name:
// <namespace>_dbglog_lines_total{handler,level} and
// <namespace>_dbglog_write_failures_total{handler}.
package statscollector
