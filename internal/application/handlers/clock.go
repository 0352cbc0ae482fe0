package handlers

import "time"

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now
