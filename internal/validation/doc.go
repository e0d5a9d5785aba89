// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and translates field
// failures into readable per-field messages. Field names are reported by
// their JSON name so messages match the request payload.
//
// # Quick Start
//
//	type Request struct {
//	    Limit    int    `json:"limit" validate:"gte=0,lte=100"`
//	    Strategy string `json:"strategy" validate:"omitempty,oneof=adaptive weighted"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr
//	}
//
// Callers that need to inspect individual failures use errors.As:
//
//	var verr *validation.RequestValidationError
//	if errors.As(err, &verr) {
//	    for _, fe := range verr.Errors() {
//	        fmt.Println(fe.Field(), fe.Tag())
//	    }
//	}
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use. The validator
// caches struct metadata after the first validation of each type.
package validation
