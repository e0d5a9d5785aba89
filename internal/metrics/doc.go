// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus instrumentation for the recommendation service.

Metrics are registered on the default registry through promauto when the
package is loaded. The Recorder type plugs them into recommend.Service:

	svc.SetRecorder(metrics.NewRecorder())

# Available Metrics

  - recommend_requests_total: Requests by outcome (counter)
    Labels: strategy, status (success, invalid, canceled, error)
  - recommend_duration_seconds: End-to-end latency (histogram)
    Labels: strategy
  - recommend_results: Recommendations returned per request (histogram)
    Labels: strategy
  - recommend_strategy_selections_total: Strategy resolutions (counter)
    Labels: requested, resolved
  - recommend_candidates: Candidate list sizes (histogram)
    Labels: source (collaborative, content)

# Export

There is no HTTP listener. Batch callers write the registry to a file in
the Prometheus text format with WriteTextfile, for pickup by the node
exporter textfile collector:

	if err := metrics.WriteTextfile("/var/lib/node_exporter/reelmatch.prom"); err != nil {
	    logger.Warn().Err(err).Msg("write metrics")
	}
*/
package metrics
