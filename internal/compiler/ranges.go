package compiler

import "github.com/khalsafoundry/pothi/internal/entities"

type groupRun struct {
	startLine uint
	endLine   uint
	orderIDs  []int
}

// CompileRanges reduces one bani's membership to one [start, end] range per
// line group. Members must arrive sorted ascending by their lines' order_id;
// the first and last member seen per group are therefore its boundaries.
// Groups are emitted in first-appearance order. A group whose order_ids are
// not consecutive still collapses to its min/max boundary; the gap is
// surfaced as an IntegrityWarning, never an error. Empty membership yields
// an empty range list.
func CompileRanges(baniName string, members []entities.BaniLine) ([]LineRange, []IntegrityWarning) {
	ranges := make([]LineRange, 0, 1)
	if len(members) == 0 {
		return ranges, nil
	}

	runs := make(map[int]*groupRun)
	groupOrder := make([]int, 0, 1)
	for _, member := range members {
		run, ok := runs[member.LineGroup]
		if !ok {
			run = &groupRun{startLine: member.LineID}
			runs[member.LineGroup] = run
			groupOrder = append(groupOrder, member.LineGroup)
		}
		run.endLine = member.LineID
		run.orderIDs = append(run.orderIDs, member.Line.OrderID)
	}

	var warnings []IntegrityWarning
	for _, group := range groupOrder {
		run := runs[group]
		if missing := gaps(run.orderIDs); len(missing) > 0 {
			warnings = append(warnings, IntegrityWarning{
				Bani:      baniName,
				LineGroup: group,
				OrderIDs:  run.orderIDs,
				Missing:   missing,
			})
		}
		ranges = append(ranges, LineRange{
			LineGroup: group,
			StartLine: run.startLine,
			EndLine:   run.endLine,
		})
	}
	return ranges, warnings
}

// gaps returns the order ids absent from an ascending run.
func gaps(orderIDs []int) []int {
	var missing []int
	for i := 1; i < len(orderIDs); i++ {
		for expected := orderIDs[i-1] + 1; expected < orderIDs[i]; expected++ {
			missing = append(missing, expected)
		}
	}
	return missing
}
