// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/objectplane/bucketc/pkg/debug"
	"github.com/objectplane/bucketc/pkg/violation"
)

var (
	// CompilesTotal tracks pipeline outcomes.
	CompilesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bucketc",
		Subsystem: "compiler",
		Name:      "compiles_total",
		Help:      "Total number of descriptor compilations",
	}, []string{"outcome"}) // outcome: "bundled", "rejected"

	// ViolationsTotal tracks recorded violations by code.
	ViolationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bucketc",
		Subsystem: "compiler",
		Name:      "violations_total",
		Help:      "Total number of violations recorded across compilations",
	}, []string{"code"}) // code: "DUPLICATE_KEY", etc.
)

func init() {
	debug.Registry().MustRegister(
		CompilesTotal,
		ViolationsTotal,
	)
}

func observeResult(phase Phase, sink *violation.List) {
	CompilesTotal.WithLabelValues(strings.ToLower(phase.String())).Inc()
	for _, v := range sink.Items() {
		ViolationsTotal.WithLabelValues(string(v.Code)).Inc()
	}
}
