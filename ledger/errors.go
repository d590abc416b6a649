package ledger

import "fmt"

// UnexpectedContentError flags a cell whose content the merge could not handle.
type UnexpectedContentError struct {
	ColNum  int
	ColName string
	Value   string
}

func (e *UnexpectedContentError) Error() string {
	return fmt.Sprintf("Unexpected %s content: '%s' (column %d)", e.ColName, e.Value, e.ColNum+1)
}

// DataFilenameError is returned when an address cannot be attributed to the
// wallet named in the export's file name.
type DataFilenameError struct {
	Filename string
	Want     string
}

func (e *DataFilenameError) Error() string {
	return fmt.Sprintf("%s is not in the filename: %s", e.Want, e.Filename)
}
