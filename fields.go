package main

import (
	"sort"
	"strings"
)

// coreFields is the priority order for well-known event fields. Columns come
// out as: core fields in this order, then attr_* columns sorted, then
// anything else sorted.
var coreFields = []string{
	"timestamp", "sessionId", "metricName", "value", "demoContentId",
	"device", "deviceCodename", "language", "connected", "banyan",
	"simplified", "retailer", "gitCommitSha", "gitBranch",
	"isVegaPlatform", "userAgent", "demoExperimentGroup",
}

func fieldOrder(fields map[string]bool) []string {
	core := make(map[string]bool, len(coreFields))
	for _, f := range coreFields {
		core[f] = true
	}

	var attrFields, otherFields []string
	for field := range fields {
		switch {
		case core[field]:
			// Added from coreFields below, in priority order
		case strings.HasPrefix(field, "attr_"):
			attrFields = append(attrFields, field)
		default:
			otherFields = append(otherFields, field)
		}
	}
	sort.Strings(attrFields)
	sort.Strings(otherFields)

	ordered := make([]string, 0, len(fields))
	for _, field := range coreFields {
		if fields[field] {
			ordered = append(ordered, field)
		}
	}
	ordered = append(ordered, attrFields...)
	ordered = append(ordered, otherFields...)

	return ordered
}
