package models

// Settings holds the owner identity and per-install preferences. The owner
// is an explicit value threaded through every store call rather than ambient
// global state.
type Settings struct {
	Owner            string `json:"owner"`
	Timezone         string `json:"timezone"` // IANA name, "Local" for system zone
	DefaultTargetMin int    `json:"default_target_min"`
	ReminderTime     string `json:"reminder_time"` // HH:MM
}
