package ui

// Item is one selectable candidate path
type Item struct {
	path string
}

func (i Item) Title() string {
	return i.path
}

// FilterValue matches against the whole path so that both the directory
// and the name can be typed
func (i Item) FilterValue() string {
	return i.path
}
