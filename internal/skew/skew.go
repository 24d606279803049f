// Package skew computes client-vs-server clock skew from CCP log records.
// Most entries carry no skew data; a file with zero samples is a normal run.
package skew

import (
	"strconv"
	"strings"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/extract"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

// DefaultBucketCount is the histogram resolution used by the charts.
const DefaultBucketCount = 30

// Sample scans records in order and emits one sample per record that carries
// both a client and a server timestamp, each independently parseable. Records
// missing either field, or carrying unparseable values, are skipped silently.
func Sample(records []model.Record, fields model.FieldMap) []model.SkewSample {
	var samples []model.SkewSample

	for _, rec := range records {
		clientMs, ok := timestampMillis(rec.RawFields[fields.ClientTimestamp])
		if !ok {
			continue
		}
		serverMs, ok := timestampMillis(rec.RawFields[fields.ServerTimestamp])
		if !ok {
			continue
		}

		samples = append(samples, model.SkewSample{
			Timestamp:   rec.Timestamp,
			SkewMillis:  serverMs - clientMs,
			SourceIndex: rec.SequenceIndex,
		})
	}

	return samples
}

// timestampMillis interprets a raw field value as a point in time and returns
// it as epoch milliseconds. CCP exports write epoch-millisecond numbers;
// RFC3339 strings and numeric strings are accepted for older exports.
func timestampMillis(v any) (int64, bool) {
	switch tv := v.(type) {
	case float64:
		return int64(tv), true
	case string:
		s := strings.TrimSpace(tv)
		if s == "" {
			return 0, false
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ms, true
		}
		if t, ok := extract.ParseTimestamp(s); ok {
			return t.UnixMilli(), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Summarize computes count, mean, min, max and an equal-width histogram over
// the samples. An empty input yields a zero summary with an empty
// distribution, not an error.
func Summarize(samples []model.SkewSample, buckets int) model.SkewSummary {
	if len(samples) == 0 {
		return model.SkewSummary{}
	}
	if buckets <= 0 {
		buckets = DefaultBucketCount
	}

	min := samples[0].SkewMillis
	max := samples[0].SkewMillis
	var sum int64
	for _, s := range samples {
		sum += s.SkewMillis
		if s.SkewMillis < min {
			min = s.SkewMillis
		}
		if s.SkewMillis > max {
			max = s.SkewMillis
		}
	}

	return model.SkewSummary{
		SampleCount:  len(samples),
		MeanMillis:   float64(sum) / float64(len(samples)),
		MinMillis:    min,
		MaxMillis:    max,
		Distribution: distribute(samples, min, max, buckets),
	}
}

// distribute partitions [min, max] into equal-width buckets and counts samples
// per bucket. Buckets are half-open on the high edge except the last, which is
// closed so max always lands somewhere. Identical min and max collapse to a
// single bucket.
func distribute(samples []model.SkewSample, min, max int64, buckets int) []model.SkewBucket {
	if min == max {
		return []model.SkewBucket{{
			Low:   float64(min),
			High:  float64(max),
			Count: len(samples),
		}}
	}

	width := float64(max-min) / float64(buckets)
	dist := make([]model.SkewBucket, buckets)
	for i := range dist {
		dist[i].Low = float64(min) + width*float64(i)
		dist[i].High = float64(min) + width*float64(i+1)
	}
	dist[buckets-1].High = float64(max)

	for _, s := range samples {
		idx := int(float64(s.SkewMillis-min) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		dist[idx].Count++
	}

	return dist
}
