// api/errors/notification_errors.go
package errors

import "errors"

var ErrNotificationNotFound = errors.New("notification not found")
