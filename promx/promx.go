/*
   Copyright 2026 The Seglint Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package promx instruments linters with Prometheus metrics.
//
// Metrics are registered on the default registry under the "seglint"
// namespace. Wrap any linter with Instrument to count checks, failures and
// latency per linter name:
//
//	lint := promx.Instrument("iso3166", iso3166.Numeric3)
package promx

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"seglint.dev/seglint"
)

const namespace = "seglint"

// Linter metrics
var (
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total number of values checked",
		},
		[]string{"linter", "result"},
	)

	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Total number of violations by code",
		},
		[]string{"linter", "code"},
	)

	CheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Linter execution time distribution",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
		},
		[]string{"linter"},
	)
)

// result label values.
const (
	resultOK   = "ok"
	resultFail = "fail"
)

// Instrument wraps lint so every call is counted and timed under name.
// The returned linter reports the wrapped linter's error unchanged.
func Instrument(name string, lint seglint.Linter) seglint.Linter {
	return func(value string) error {
		start := time.Now()
		err := lint(value)
		CheckDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		if err == nil {
			ChecksTotal.WithLabelValues(name, resultOK).Inc()
			return nil
		}
		ChecksTotal.WithLabelValues(name, resultFail).Inc()
		if v, ok := seglint.AsViolation(err); ok {
			ViolationsTotal.WithLabelValues(name, string(v.Code)).Inc()
		}
		return err
	}
}
