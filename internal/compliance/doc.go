// Package compliance evaluates a placed floor plan against a registry of
// building-code rules under a selected jurisdiction, producing a report of
// violations, passed checks, and summary counters.
package compliance
