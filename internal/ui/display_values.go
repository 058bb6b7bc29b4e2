package ui

import (
	"fmt"
	"strings"
)

const (
	sequenceOpenBracketConstant   = "["
	sequenceCloseBracketConstant  = "]"
	sequenceItemSeparatorConstant = ", "
)

// FormatDisplayValue renders a value for table cells and console output.
// Strings pass through untouched; sequences render recursively as "[a, b, c]".
func FormatDisplayValue(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return ""
	case string:
		return typedValue
	case []string:
		renderedItems := make([]string, 0, len(typedValue))
		for _, item := range typedValue {
			renderedItems = append(renderedItems, FormatDisplayValue(item))
		}
		return sequenceOpenBracketConstant + strings.Join(renderedItems, sequenceItemSeparatorConstant) + sequenceCloseBracketConstant
	case []any:
		renderedItems := make([]string, 0, len(typedValue))
		for _, item := range typedValue {
			renderedItems = append(renderedItems, FormatDisplayValue(item))
		}
		return sequenceOpenBracketConstant + strings.Join(renderedItems, sequenceItemSeparatorConstant) + sequenceCloseBracketConstant
	default:
		return fmt.Sprintf("%v", typedValue)
	}
}
