package toolbox

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem on one page. Extraction continued
// but the page contributed nothing, or less than expected.
type Warning struct {
	Page    int // 1-indexed, 0 for document-wide warnings
	Message string
}

func (w Warning) String() string {
	if w.Page == 0 {
		return w.Message
	}
	return fmt.Sprintf("page %d: %s", w.Page, w.Message)
}

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
