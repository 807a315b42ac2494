package coordinator

// Mode is the coordinator's current intent context: composing a new record or
// editing an existing one. The zero value is the creating mode; an editing
// mode can only be built with a target id, so "editing without a target" is
// unrepresentable.
type Mode struct {
	editing  bool
	targetID string
}

// Creating returns the mode for composing a new record.
func Creating() Mode {
	return Mode{}
}

// Editing returns the mode for editing the record stored under id.
func Editing(id string) Mode {
	return Mode{editing: true, targetID: id}
}

// IsEditing reports whether an existing record is being edited.
func (m Mode) IsEditing() bool {
	return m.editing
}

// TargetID returns the id of the record being edited, if any.
func (m Mode) TargetID() (string, bool) {
	return m.targetID, m.editing
}
