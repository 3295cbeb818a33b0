package classify

// Level describes how much a confidence value can be trusted.
type Level struct {
	Level       string `json:"level"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// ConfidenceLevel buckets a confidence: >=0.7 high, >=0.5 medium, >=0.3 low, otherwise very-low.
func ConfidenceLevel(confidence float64) Level {
	switch {
	case confidence >= 0.7:
		return Level{Level: "high", Label: "High", Color: "green",
			Description: "Classified with very high confidence"}
	case confidence >= 0.5:
		return Level{Level: "medium", Label: "Medium", Color: "yellow",
			Description: "Classified with moderate confidence"}
	case confidence >= 0.3:
		return Level{Level: "low", Label: "Low", Color: "orange",
			Description: "Classified with low confidence; manual review recommended"}
	default:
		return Level{Level: "very-low", Label: "Very low", Color: "red",
			Description: "Confidence is too low; classify manually"}
	}
}
