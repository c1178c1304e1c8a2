// Package timezone resolves the application timezone once at startup
// and exposes helpers for working in it.
//
//	now := timezone.Now()                       // current time in the app timezone
//	t, err := timezone.Parse("2006-01-02", v)   // parse a date in the app timezone
//	loc := timezone.GetLocation()
//
// Stay dates (check-in, check-out, availability windows) are calendar
// dates anchored to the property's day, so jobs that reason about
// "today" must use this package instead of time.Now().UTC().
//
// The timezone comes from the APP_TIMEZONE environment variable and
// must be a standard IANA name such as "UTC" or "Asia/Jakarta".
// Invalid or missing values fall back to UTC.
package timezone
