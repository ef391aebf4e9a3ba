package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveAlreadyDecided = errors.New("leave request has already been decided")
	ErrNotRequestOwner     = errors.New("leave request belongs to another user")
	ErrNotPending          = errors.New("only pending leave requests can be deleted")
)
