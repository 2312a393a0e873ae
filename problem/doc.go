// Package problem reads allocation problems from YAML documents and renders
// solved allocations as reports.
//
// Document layout:
//
//	name: capital budgeting
//	direction: max            # min | max
//	leading_zeros: false      # levels/values already start with the zero entry
//	policy: zero-sentinel     # zero-sentinel | track-populated
//	aggregate: value          # optional expression over resource and value
//	levels: [100, 200, 300]
//	stages:
//	  - name: plant-a
//	    values: [42, 58, 71]
//	  - name: plant-b
//	    values: [30, 49, 63]
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package problem
