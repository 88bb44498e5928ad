package ocr

// Vertex is a point in image pixel coordinates.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingBox is the quadrilateral reported by the OCR engine for a detected
// word. Vertices are ordered top-left, top-right, bottom-right, bottom-left.
type BoundingBox struct {
	Vertices [4]Vertex `json:"vertices"`
}

// MidY returns the average Y coordinate of the four corners.
func (b BoundingBox) MidY() float64 {
	sum := 0
	for _, v := range b.Vertices {
		sum += v.Y
	}
	return float64(sum) / 4.0
}

// MidX returns the average X coordinate of the four corners.
func (b BoundingBox) MidX() float64 {
	sum := 0
	for _, v := range b.Vertices {
		sum += v.X
	}
	return float64(sum) / 4.0
}

// WordAnnotation is a single recognized word plus its position on the page.
type WordAnnotation struct {
	Text        string      `json:"text"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// Result is the full output of a text-extraction run: the recognized text as
// ordered lines, and per-word annotations when the engine reports positions.
// Both are untrusted input to the parser; either may be empty.
type Result struct {
	Text       string           `json:"text"`
	Words      []WordAnnotation `json:"words,omitempty"`
	Language   string           `json:"language,omitempty"`
	Confidence float32          `json:"confidence,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`
}

// Box builds a rectangular bounding box from left/top/width/height, the shape
// tesseract reports in TSV output.
func Box(left, top, width, height int) BoundingBox {
	return BoundingBox{Vertices: [4]Vertex{
		{X: left, Y: top},
		{X: left + width, Y: top},
		{X: left + width, Y: top + height},
		{X: left, Y: top + height},
	}}
}
