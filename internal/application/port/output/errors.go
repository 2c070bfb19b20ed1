package output

import "errors"

// ErrSessionClosed возвращается адаптером, когда браузерная сессия больше недоступна.
var ErrSessionClosed = errors.New("browser session closed")
