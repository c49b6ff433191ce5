package article

import "errors"

var (
	ErrArticleNotFound = errors.New("the requested article could not be found")
	ErrNothingWritten  = errors.New("the article could not be saved")
)
