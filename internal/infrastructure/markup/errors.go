package markup

import "errors"

var ErrNoBody = errors.New("no <body> in markup")
