package ui

import (
	"fmt"
	"strings"
)

const (
	tableCaptionTemplateConstant = "-- %s --"
	tableHeadingTemplateConstant = "- %s -"
	tableColumnSeparatorConstant = "  "
	tableLineSeparatorConstant   = "\n"
	tableEmptyCellConstant       = ""
)

// TableFormatter renders rows of display values as a monospace text table
// with a caption, wrapped headings, and columns padded to the widest cell.
type TableFormatter struct{}

// NewTableFormatter constructs a TableFormatter.
func NewTableFormatter() TableFormatter {
	return TableFormatter{}
}

// Format renders the caption, heading row, and data rows. Rows shorter than
// the heading count are padded with empty cells; longer rows are truncated.
func (formatter TableFormatter) Format(caption string, headings []string, rows [][]string) string {
	columnCount := len(headings)

	wrappedHeadings := make([]string, columnCount)
	for headingIndex, headingText := range headings {
		wrappedHeadings[headingIndex] = fmt.Sprintf(tableHeadingTemplateConstant, headingText)
	}

	normalizedRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalizedRows = append(normalizedRows, normalizeRowWidth(row, columnCount))
	}

	columnWidths := make([]int, columnCount)
	for columnIndex := range columnWidths {
		columnWidths[columnIndex] = len(wrappedHeadings[columnIndex])
	}
	for _, row := range normalizedRows {
		for columnIndex, cellValue := range row {
			if len(cellValue) > columnWidths[columnIndex] {
				columnWidths[columnIndex] = len(cellValue)
			}
		}
	}

	outputLines := []string{}
	if len(strings.TrimSpace(caption)) > 0 {
		outputLines = append(outputLines, fmt.Sprintf(tableCaptionTemplateConstant, caption), tableEmptyCellConstant)
	}
	outputLines = append(outputLines, formatPaddedRow(wrappedHeadings, columnWidths))
	for _, row := range normalizedRows {
		outputLines = append(outputLines, formatPaddedRow(row, columnWidths))
	}

	return strings.Join(outputLines, tableLineSeparatorConstant) + tableLineSeparatorConstant
}

func normalizeRowWidth(row []string, columnCount int) []string {
	normalizedRow := make([]string, columnCount)
	for columnIndex := 0; columnIndex < columnCount; columnIndex++ {
		if columnIndex < len(row) {
			normalizedRow[columnIndex] = row[columnIndex]
			continue
		}
		normalizedRow[columnIndex] = tableEmptyCellConstant
	}
	return normalizedRow
}

func formatPaddedRow(cells []string, columnWidths []int) string {
	paddedCells := make([]string, len(cells))
	for cellIndex, cellValue := range cells {
		paddedCells[cellIndex] = cellValue + strings.Repeat(" ", columnWidths[cellIndex]-len(cellValue))
	}
	return strings.TrimRight(strings.Join(paddedCells, tableColumnSeparatorConstant), " ")
}
