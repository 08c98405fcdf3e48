// Package parse extracts numeric values from semi-structured spreadsheet
// cells: revenue strings in mixed currency notation, percentage trends,
// "20+ products" style counts. Every function is total over string input
// and degrades to zero when no numeric substring is found.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// USDToCrore converts a raw USD amount to INR crore at a fixed exchange rate.
const USDToCrore = 83.0 / 1e7

var (
	numberRe = regexp.MustCompile(`[\d.]+`)
	intRe    = regexp.MustCompile(`(\d+)`)
	growthRe = regexp.MustCompile(`([+-]?\d+\.?\d*)%`)
)

// Revenue extracts an approximate revenue figure in INR crore.
// "₹600 Cr" style values are taken as-is, "$N" values are converted at the
// fixed rate, anything else falls back to the first bare number.
func Revenue(val string) float64 {
	val = strings.ReplaceAll(val, ",", "")
	val = strings.ReplaceAll(val, " ", "")

	if strings.Contains(val, "₹") && strings.Contains(strings.ToLower(val), "cr") {
		return firstNumber(val)
	}

	if strings.Contains(val, "$") {
		return firstNumber(val) * USDToCrore
	}

	return firstNumber(val)
}

// Count extracts the first integer from a product-count cell.
func Count(val string) int {
	m := intRe.FindStringSubmatch(val)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Growth extracts a signed YoY percentage from a trend cell.
func Growth(val string) float64 {
	m := growthRe.FindStringSubmatch(val)
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return f
}

// Patents extracts the first integer from a patent-count cell.
func Patents(val string) int {
	return Count(val)
}

// ApprovalCount counts comma-separated entries in a regulatory approvals cell.
func ApprovalCount(val string) int {
	if strings.TrimSpace(val) == "" {
		return 0
	}
	return len(strings.Split(val, ","))
}

func firstNumber(val string) float64 {
	m := numberRe.FindString(val)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
