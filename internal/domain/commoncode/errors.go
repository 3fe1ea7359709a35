package commoncode

import "errors"

var ErrCodeNotFound = errors.New("common code not found")
