package itsm

// Description is the display metadata of a category.
type Description struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Priority    string   `json:"priority"`
	Examples    []string `json:"examples"`
}

var descriptions = map[Type]Description{
	Incident: {
		Name:        "Incident",
		Description: "An unplanned event that interrupts a service or degrades its quality",
		Icon:        "🔴",
		Priority:    "high",
		Examples:    []string{"Server down", "Application error", "Network outage"},
	},
	Problem: {
		Name:        "Problem Management",
		Description: "The root cause of one or more incidents",
		Icon:        "🔍",
		Priority:    "medium",
		Examples:    []string{"Root cause analysis", "Recurrence prevention plan", "Identifying a system weakness"},
	},
	Change: {
		Name:        "Change Management",
		Description: "A planned modification of IT infrastructure or services",
		Icon:        "🔧",
		Priority:    "medium",
		Examples:    []string{"Configuration change", "Patch application", "System modification"},
	},
	Release: {
		Name:        "Release Management",
		Description: "Rolling out new features or versions to production",
		Icon:        "🚀",
		Priority:    "high",
		Examples:    []string{"Application deployment", "New feature release", "Version upgrade"},
	},
	Request: {
		Name:        "Service Request",
		Description: "A user's request for a standard service",
		Icon:        "📝",
		Priority:    "low",
		Examples:    []string{"Access permission request", "Account creation", "Additional resources"},
	},
	Other: {
		Name:        "Other",
		Description: "Items that fit none of the categories above",
		Icon:        "❓",
		Priority:    "low",
		Examples:    []string{"General question", "Documentation", "Unclassified item"},
	},
}

// Descriptions returns metadata for every category.
func Descriptions() map[Type]Description {
	out := make(map[Type]Description, len(descriptions))
	for t, d := range descriptions {
		out[t] = cloneDescription(d)
	}
	return out
}

func cloneDescription(d Description) Description {
	d.Examples = append([]string(nil), d.Examples...)
	return d
}
