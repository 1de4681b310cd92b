// Package tributary unifies event records emitted in two divergent JSON
// shapes into one normalized, chronologically sorted collection.
//
// Quick start:
//
//	t := tributary.New()
//
//	records, report := t.Unify([]map[string]any{
//	    {"timestamp": "2023-10-15T14:30:45.123Z", "msg": "b", "val": 2},
//	    {"timestamp": 500, "message": "a", "value": 1},
//	})
//	fmt.Println(report.Unified, records[0].Source) // 2 format_1
//
// A Tributary instance holds no cross-call state and is safe for concurrent
// use provided each call receives its own input collection.
package tributary
