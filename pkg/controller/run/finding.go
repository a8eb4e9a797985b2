package run

import "fmt"

// Finding is a line that matched at least one pattern.
// If the file couldn't be read, Err is set and the finding stands for the whole file.
type Finding struct {
	File    string
	Line    int
	Text    string
	Pattern string
	Err     error
}

// Message returns the text printed for the finding.
func (f *Finding) Message() string {
	if f.Err != nil {
		return "Error reading file: " + f.Err.Error()
	}
	return fmt.Sprintf("Line %d: %s", f.Line, f.Text)
}
