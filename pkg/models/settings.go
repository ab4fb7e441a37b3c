package models

// Settings represents the editor configuration
type Settings struct {
	UI     UISettings     `yaml:"ui" json:"ui"`
	Editor EditorSettings `yaml:"editor" json:"editor"`
}

// UISettings controls tree rendering preferences
type UISettings struct {
	Indent        int    `yaml:"indent" json:"indent"`                   // Spaces per tree depth level
	ShowSlotNames bool   `yaml:"show_slot_names" json:"show_slot_names"` // Render named-slot group rows
	Theme         string `yaml:"theme" json:"theme"`                     // "dark" or "light"
}

// EditorSettings controls interaction preferences
type EditorSettings struct {
	MouseEnabled   bool `yaml:"mouse_enabled" json:"mouse_enabled"`       // Drag and drop via mouse
	AutoCommitEdit bool `yaml:"auto_commit_edit" json:"auto_commit_edit"` // Commit an in-flight rename when selection moves
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Indent:        2,
			ShowSlotNames: true,
			Theme:         "dark",
		},
		Editor: EditorSettings{
			MouseEnabled:   true,
			AutoCommitEdit: true,
		},
	}
}
