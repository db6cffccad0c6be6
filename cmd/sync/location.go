package main

import "time"

// feedLocation resolves the schedule timezone, defaulting to UTC.
func feedLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
