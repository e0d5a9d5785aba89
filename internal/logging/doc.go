// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
// Components take a child logger:
//
//	logger := logging.WithComponent("dataset")
//	logger.Info().Int("movies", n).Msg("catalog loaded")
//
// # Request Context
//
// A request ID and a logger travel through context. Ctx returns the stored
// logger (or the global one) with the request ID attached:
//
//	ctx = logging.ContextWithNewRequestID(ctx)
//	ctx = logging.ContextWithLogger(ctx, logging.Logger())
//	logging.Ctx(ctx).Info().Msg("starting run")
//
// recommend.Service builds its per-request logger on the context logger
// when one is present.
//
// # Configuration
//
// The level, format and caller flag come from the logging section of the
// application configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
