package sse

import "errors"

var ErrSubscriberClosed = errors.New("subscriber closed before connecting")
