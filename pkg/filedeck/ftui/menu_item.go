package ftui

// MenuItem is an entry of the bottom menu. The first hotkey names its region.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
