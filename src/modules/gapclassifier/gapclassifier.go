// Package gapclassifier implements the observation gap classifier:
// given a range, a monitor's sampling interval, and its check timeline,
// it materializes the sub-intervals of the range that have no valid
// observation covering them.
package gapclassifier

import (
	"fleetstatus/src/modules/interval"

	"fleetstatus/src/modules/shared"
)

// Check is one observation on the timeline handed to Classify. Status
// is opaque to the classifier except for the single "unknown" value,
// which is itself a valid (if uninformative) verdict.
type Check struct {
	CheckedAt int64
	Status    shared.CheckStatus
}

// Classify returns the merged set of sub-intervals of [rangeStart,
// rangeEnd) that should be treated as unknown, given a chronologically
// sorted sequence of checks (which may include points before
// rangeStart, used only for carry-over, and is expected to stop
// contributing once a check at or after rangeEnd is reached).
func Classify(rangeStart, rangeEnd, intervalSec int64, checks []Check) interval.Set {
	if rangeEnd <= rangeStart {
		return interval.Set{}
	}
	if intervalSec <= 0 {
		return interval.Set{{Start: rangeStart, End: rangeEnd}}
	}

	result := interval.Set{}
	cursor := rangeStart
	var lastCheck *Check

	for i := range checks {
		c := checks[i]
		if c.CheckedAt < rangeStart {
			lastCheck = &checks[i]
			continue
		}
		if c.CheckedAt >= rangeEnd {
			break
		}
		result = classifySegment(result, cursor, c.CheckedAt, lastCheck, intervalSec)
		lastCheck = &checks[i]
		cursor = c.CheckedAt
	}

	result = classifySegment(result, cursor, rangeEnd, lastCheck, intervalSec)
	return result
}

// classifySegment appends the unknown sub-intervals of [segStart,
// segEnd) to result, given the most recent check known at segStart.
func classifySegment(result interval.Set, segStart, segEnd int64, lastCheck *Check, intervalSec int64) interval.Set {
	if segEnd <= segStart {
		return result
	}

	if lastCheck == nil {
		return interval.PushMerged(result, interval.Interval{Start: segStart, End: segEnd})
	}

	validUntil := lastCheck.CheckedAt + intervalSec
	if segStart >= validUntil {
		return interval.PushMerged(result, interval.Interval{Start: segStart, End: segEnd})
	}

	coveredEnd := segEnd
	if validUntil < coveredEnd {
		coveredEnd = validUntil
	}

	if lastCheck.Status == shared.CheckStatusUnknown {
		result = interval.PushMerged(result, interval.Interval{Start: segStart, End: coveredEnd})
	}

	if coveredEnd < segEnd {
		result = interval.PushMerged(result, interval.Interval{Start: coveredEnd, End: segEnd})
	}

	return result
}
