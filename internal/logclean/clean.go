// Package logclean normalizes API access logs: type coercion, fixed-rule
// fills for missing fields, business-rule anomaly flags and IQR-based
// outlier flags. The whole batch is required before anything is emitted
// because fill values and bounds are global statistics.
package logclean

import (
	"errors"
	"sort"
	"time"

	"sales-data-lab/internal/numeric"
	"sales-data-lab/internal/record"
	"sales-data-lab/internal/stats"
)

// Fill defaults for missing fields.
const (
	fillEndpoint = "/unknown"
	fillMethod   = "UNKNOWN"
	fillStatus   = 0
)

// ErrNoValidResponseTimes is returned when no record carries a response
// time, leaving nothing to derive the fill median from.
var ErrNoValidResponseTimes = errors.New("no valid response_time_ms values to compute fill median")

// CleanedLog is one fully normalized log record.
type CleanedLog struct {
	Timestamp      string         `json:"timestamp"`
	Endpoint       string         `json:"endpoint"`
	Method         string         `json:"method"`
	Status         int            `json:"status"`
	ResponseTimeMS numeric.Number `json:"response_time_ms"`
	IsAnomaly      bool           `json:"is_anomaly"`
	IsOutlier      bool           `json:"is_outlier"`
}

// Summary counts records and corrections.
type Summary struct {
	TotalRecords            int `json:"total_records"`
	FilledResponseTimeCount int `json:"filled_response_time_count"`
	FilledStatusCount       int `json:"filled_status_count"`
	FilledEndpointCount     int `json:"filled_endpoint_count"`
	FilledMethodCount       int `json:"filled_method_count"`
	AnomalyCount            int `json:"anomaly_count"`
	OutlierCount            int `json:"outlier_count"`
}

// ResponseTimeBounds are the IQR outlier boundaries actually applied.
type ResponseTimeBounds struct {
	Lower numeric.Number `json:"lower"`
	Upper numeric.Number `json:"upper"`
}

// Result is the full cleaning report. Anomalies and Outliers are filtered
// views over CleanedLogs, never recomputed.
type Result struct {
	Summary            Summary            `json:"summary"`
	ResponseTimeBounds ResponseTimeBounds `json:"response_time_bounds"`
	CleanedLogs        []CleanedLog       `json:"cleaned_logs"`
	Anomalies          []CleanedLog       `json:"anomalies"`
	Outliers           []CleanedLog       `json:"outliers"`
}

// entry is the mutable working form of one record between stages.
// nil pointer = missing before fill.
type entry struct {
	ts           time.Time
	endpoint     *string
	method       *string
	status       *float64
	responseTime *float64
	isAnomaly    bool
	isOutlier    bool
}

// Clean runs the fixed stage sequence over rows: coerce, fill, flag
// anomalies, flag outliers, order and emit. Rows with an unparseable
// timestamp are dropped before any later stage sees them.
func Clean(rows []record.Record) (*Result, error) {
	entries := coerce(rows)

	counts, err := fill(entries)
	if err != nil {
		return nil, err
	}

	flagAnomalies(entries)

	lower, upper, err := flagOutliers(entries)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ts.Before(entries[j].ts)
	})

	cleaned := make([]CleanedLog, 0, len(entries))
	anomalies := make([]CleanedLog, 0)
	outliers := make([]CleanedLog, 0)
	for _, e := range entries {
		item := CleanedLog{
			Timestamp:      e.ts.Format("2006-01-02T15:04:05Z"),
			Endpoint:       *e.endpoint,
			Method:         *e.method,
			Status:         int(*e.status),
			ResponseTimeMS: numeric.Normalize(*e.responseTime),
			IsAnomaly:      e.isAnomaly,
			IsOutlier:      e.isOutlier,
		}
		cleaned = append(cleaned, item)
		if item.IsAnomaly {
			anomalies = append(anomalies, item)
		}
		if item.IsOutlier {
			outliers = append(outliers, item)
		}
	}

	counts.TotalRecords = len(cleaned)
	counts.AnomalyCount = len(anomalies)
	counts.OutlierCount = len(outliers)

	return &Result{
		Summary: counts,
		ResponseTimeBounds: ResponseTimeBounds{
			Lower: numeric.Normalize(lower),
			Upper: numeric.Normalize(upper),
		},
		CleanedLogs: cleaned,
		Anomalies:   anomalies,
		Outliers:    outliers,
	}, nil
}

// coerce applies per-field type coercion. Coercion failure means missing,
// except for the timestamp where it drops the record.
func coerce(rows []record.Record) []*entry {
	entries := make([]*entry, 0, len(rows))
	for _, row := range rows {
		ts, ok := row.Time("timestamp")
		if !ok {
			continue
		}
		e := &entry{ts: ts}
		if s, ok := row.String("endpoint"); ok {
			e.endpoint = &s
		}
		if s, ok := row.String("method"); ok {
			e.method = &s
		}
		if f, ok := row.Float("status"); ok {
			e.status = &f
		}
		if f, ok := row.Float("response_time_ms"); ok {
			e.responseTime = &f
		}
		entries = append(entries, e)
	}
	return entries
}

// fill replaces missing fields by fixed rules and counts each fill.
// The response-time fill value is the median of all present values.
func fill(entries []*entry) (Summary, error) {
	var counts Summary

	present := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.responseTime != nil {
			present = append(present, *e.responseTime)
		}
	}
	median, err := stats.Median(present)
	if err != nil {
		if len(entries) == 0 {
			// No surviving records at all: nothing to fill, nothing to bound.
			return counts, stats.ErrEmptyInput
		}
		return counts, ErrNoValidResponseTimes
	}

	for _, e := range entries {
		if e.responseTime == nil {
			v := median
			e.responseTime = &v
			counts.FilledResponseTimeCount++
		}
		if e.status == nil {
			v := float64(fillStatus)
			e.status = &v
			counts.FilledStatusCount++
		}
		if e.endpoint == nil {
			v := fillEndpoint
			e.endpoint = &v
			counts.FilledEndpointCount++
		}
		if e.method == nil {
			v := fillMethod
			e.method = &v
			counts.FilledMethodCount++
		}
	}
	return counts, nil
}

// flagAnomalies applies the business rule. status 0 is the "was filled"
// sentinel and is exempt from the range check; that conflation is part of
// the contract and must not be corrected here.
func flagAnomalies(entries []*entry) {
	for _, e := range entries {
		status := *e.status
		rt := *e.responseTime
		e.isAnomaly = rt < 0 || (status != 0 && (status < 100 || status > 599))
	}
}

// flagOutliers computes IQR bounds over the filled response-time
// distribution and flags values outside them.
func flagOutliers(entries []*entry) (lower, upper float64, err error) {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = *e.responseTime
	}
	sort.Float64s(values)

	q1, err := stats.Quantile(values, 0.25)
	if err != nil {
		return 0, 0, err
	}
	q3, err := stats.Quantile(values, 0.75)
	if err != nil {
		return 0, 0, err
	}

	iqr := q3 - q1
	lower = q1 - 1.5*iqr
	upper = q3 + 1.5*iqr

	for _, e := range entries {
		rt := *e.responseTime
		e.isOutlier = rt < lower || rt > upper
	}
	return lower, upper, nil
}
