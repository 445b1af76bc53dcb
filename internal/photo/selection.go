package photo

// Selection remembers the last accepted photo of a form. A rejected
// candidate leaves the previous selection in place.
type Selection struct {
	inspect Inspector
	maxSize int64
	path    string
	info    Info
}

// NewSelection uses Inspect and DefaultMaxSize when given zero values.
func NewSelection(inspect Inspector, maxSize int64) *Selection {
	if inspect == nil {
		inspect = Inspect
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Selection{inspect: inspect, maxSize: maxSize}
}

// Accept inspects and checks path and selects it on success.
func (s *Selection) Accept(path string) (Info, error) {
	info, err := s.inspect(path)
	if err != nil {
		return Info{}, err
	}
	if err := Check(info, s.maxSize); err != nil {
		return info, err
	}
	s.path, s.info = path, info
	return info, nil
}

// Path is the selected file, or "" when nothing was accepted yet.
func (s *Selection) Path() string { return s.path }

func (s *Selection) Info() Info { return s.info }

// Clear drops the current selection.
func (s *Selection) Clear() {
	s.path, s.info = "", Info{}
}
