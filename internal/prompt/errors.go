package prompt

import "errors"

// ErrAborted người dùng hủy nhập liệu (Ctrl+C)
var ErrAborted = errors.New("prompt: aborted")
