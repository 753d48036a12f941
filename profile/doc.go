// Package profile is the process-wide profiler, compiled in only when the
// benchprofile build tag is set:
//
//	go build -tags=benchprofile
//
// Without the tag every function is empty and Enabled is false, so calls and
// blocks guarded by "if profile.Enabled" are removed by the compiler. Code that
// wants a profiler regardless of the tag should hold its own timing.Profiler.
//
//	profile.Reinitialize(10, 100)
//	profile.Start("foo do stuff")
//	fooDoStuff()
//	profile.Record("foo do stuff")
//	profile.PrintSingleSummary("foo do stuff")
package profile
