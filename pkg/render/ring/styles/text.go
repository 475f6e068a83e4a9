package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 7.0
	fontSizeMax   = 16.0
	labelPadding  = 0.8 // fraction of the arc length labels may occupy
)

// FontSize picks a label size that fits both the arc's thickness and its
// approximate length along the mid radius.
func FontSize(arcLen, thickness float64, textLen int) float64 {
	n := max(1, textLen)
	byThickness := thickness * 0.6
	byLength := (arcLen * labelPadding) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byThickness, byLength)))
}

// FitsLabel reports whether a label of textLen characters is worth drawing
// at all: arcs too short for even the minimum font size stay unlabeled.
func FitsLabel(arcLen, thickness float64, textLen int) bool {
	n := max(1, textLen)
	return arcLen*labelPadding >= float64(n)*fontCharWidth*fontSizeMin && thickness >= fontSizeMin
}

// TruncateLabel shortens a label to what fits along the arc at the given
// font size.
func TruncateLabel(label string, arcLen, fontSize float64) string {
	charWidth := fontSize * fontCharWidth
	maxChars := int(arcLen * labelPadding / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}
	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}

// EscapeXML escapes text for safe embedding in SVG attributes and content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
