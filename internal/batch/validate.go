package batch

import "fmt"

// ValidationError records a problem with one record of a batch file.
type ValidationError struct {
	Index int
	Name  string
	Err   error
}

// Error returns a human-readable string including the record position.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("birth %s: %v", Record{Name: e.Name}.Label(e.Index), e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every record without computing charts. Calendar problems
// that need the lunar tables, such as a missing leap month, are left to the
// run.
func Validate(f *File) []ValidationError {
	var errs []ValidationError
	for i, r := range f.Births {
		in, err := r.Input()
		if err == nil {
			err = in.Validate()
		}
		if err != nil {
			errs = append(errs, ValidationError{Index: i, Name: r.Name, Err: err})
		}
	}
	return errs
}
