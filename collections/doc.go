// Package collections provides List, a generic ordered collection that
// maintains its own secondary indices and group partitions.
//
// # Overview
//
// A List behaves like a JavaScript array (Push, Unshift, Pop, Shift,
// Splice) but every mutation also updates:
//
//   - secondary indices: key → element maps, one per configured key
//     function, where the most recently inserted element wins a key;
//   - group partitions: per-group buckets filled by a classifier, either a
//     single flat bucket (classifier returns true) or one bucket per
//     returned value.
//
//	nums := collections.MustNew(collections.Config[int, int]{
//	    By: collections.ByFuncs(map[string]collections.KeyFunc[int]{
//	        "double": func(i int) any { return i * 2 },
//	    }),
//	}, 1, 2, 6)
//	two, _ := nums.Lookup("double", 4) // → 2
//
// # Configuration
//
// [Config] is resolved once by [New]. Indices come from [ByField],
// [ByFields] or [ByFuncs]; groups from a map of [Classifier] (see [Flat] and
// [Keyed]); the optional [Transform] ([Func], [Convert], [Constructor])
// turns raw inputs of type In into stored elements of type T.
//
// # Consistency
//
// Insertions are staged completely (transform, keys, classifications)
// before anything is written, so a failing callback rejects the whole call
// with an [*ExtractionError] and leaves the List untouched. Removals undo
// exactly the writes recorded for each element and cannot fail. When an
// element that won a key is removed, the next most recent element with the
// same key takes the key back.
//
// # Observability
//
// [Config.Logger] receives debug records for every batch and a warning for
// every rejected one. [Config.Metrics] accepts any [MetricsCollector]; the
// prommetrics package exports the counters to Prometheus.
package collections
