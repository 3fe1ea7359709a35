package consultant

import "errors"

var ErrConsultantNotFound = errors.New("consultant not found")
