package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author with the specified id could not be found")
	ErrInvalidStatus  = errors.New("specified author's status is not valid")
	ErrNothingWritten = errors.New("failed to create author due to database error")
	ErrNotApproved    = errors.New("this author is not approved and therefore cannot post an article")
)
