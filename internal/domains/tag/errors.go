package tag

import "errors"

var (
	ErrTagNotFound = errors.New("the requested tag could not be found")
	ErrTitleTaken  = errors.New("a tag with this title already exists")
)
