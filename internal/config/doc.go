// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides configuration loading for Reelmatch.

Configuration is layered with koanf, each layer overriding the previous one:

 1. Built-in defaults (recommend.DefaultConfig plus logging defaults)
 2. A YAML file: CONFIG_PATH, reelmatch.yaml, reelmatch.yml, or /etc/reelmatch/config.yaml
 3. Environment variables listed in the mapping table

# Configuration File

	logging:
	  level: debug
	  format: console
	recommend:
	  weights:
	    collaborative: 0.6
	    content_based: 0.4
	  collaborative:
	    mode: both
	    neighbors: 20
	  diversity:
	    factor: 0.5
	input:
	  interactions_path: data/interactions.json
	  catalog_path: data/catalog.json
	metrics:
	  textfile_path: /var/lib/node_exporter/reelmatch.prom

# Environment Variables

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Recommendation:
  - RECOMMEND_WEIGHT_COLLABORATIVE, RECOMMEND_WEIGHT_CONTENT
  - RECOMMEND_ADAPTIVE_WEIGHT_COLLABORATIVE, RECOMMEND_ADAPTIVE_WEIGHT_CONTENT
  - RECOMMEND_SWITCHING_MIN_RATINGS, RECOMMEND_ADAPTIVE_MIN_USER_RATINGS, RECOMMEND_ADAPTIVE_MIN_TOTAL_RATINGS
  - RECOMMEND_COLLABORATIVE_MODE (user, item, both), RECOMMEND_NEIGHBORS, RECOMMEND_WORKERS
  - RECOMMEND_GENRE_WEIGHT, RECOMMEND_COUNTRY_WEIGHT, RECOMMEND_DIRECTOR_WEIGHT,
    RECOMMEND_ACTOR_WEIGHT, RECOMMEND_YEAR_WEIGHT, RECOMMEND_YEAR_WINDOW
  - RECOMMEND_DIVERSITY_ENABLED, RECOMMEND_DIVERSITY_FACTOR
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_CANDIDATE_MULTIPLIER

Input and export:
  - INTERACTIONS_PATH, CATALOG_PATH, WATCHED_PATH
  - METRICS_TEXTFILE

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    return err
	}
	logging.Init(cfg.LoggingOptions())
	svc, err := recommend.NewService(&cfg.Recommend, logging.Logger())
*/
package config
