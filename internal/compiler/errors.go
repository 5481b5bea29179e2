package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeError reports a malformed encoded field on a corpus row. It is
// fatal to the run: garbled translation data must never reach published
// artifacts.
type DecodeError struct {
	LineID            uint
	TranslationSource string
	Err               error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding additional_information for line %d, translation source %q: %v",
		e.LineID, e.TranslationSource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RetrievalError reports that the store failed to return rows for a stage.
// Fatal to the run.
type RetrievalError struct {
	Stage string
	Err   error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieving %s: %v", e.Stage, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// IntegrityWarning records a non-contiguous line group inside a bani's
// membership. The compiled range still covers min to max order, so the
// published bani silently spans the listed missing lines. Never fatal.
type IntegrityWarning struct {
	Bani      string `json:"bani"`
	LineGroup int    `json:"line_group"`
	OrderIDs  []int  `json:"order_ids"`
	Missing   []int  `json:"missing"`
}

func (w IntegrityWarning) String() string {
	missing := make([]string, 0, len(w.Missing))
	for _, orderID := range w.Missing {
		missing = append(missing, strconv.Itoa(orderID))
	}
	return fmt.Sprintf("bani %q line group %d skips order ids %s",
		w.Bani, w.LineGroup, strings.Join(missing, ", "))
}
