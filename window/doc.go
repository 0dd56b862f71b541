// Package window implements a single compositor-managed window on top
// of a client-side decoration service.
//
// The compositor drives a window asynchronously: it proposes sizes and
// states in configuration events that must be acknowledged, and the
// window can only ask for state changes, never make them directly.
// Window hides that negotiation behind a synchronous-looking API. Its
// size and state only change when a configuration arrives, so the
// values returned by State and ClientBounds always reflect what the
// compositor last confirmed.
//
// All event handlers run during Display.RoundTrip or the
// application's own dispatch loop, on the goroutine that calls it. A
// Window must not be used concurrently from more than one goroutine.
package window
