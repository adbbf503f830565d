package service

import "time"

// Clock supplies timestamps and fresh ranks. Calendar "today" never comes
// from here; callers pass their own date.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }
