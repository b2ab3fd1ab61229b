// Package player runs the audio render thread.
//
// A [Player] owns one goroutine that consumes [Command] values in order and
// opens or closes a hardware stream through a [Device]. While a stream is
// open, every device callback renders one buffer from the root node at the
// current sample clock, advances the clock and publishes a [CurrentSample]
// update. Updates travel over a bounded channel; when the reader falls
// behind, the oldest pending update is discarded so the newest clock is
// always delivered.
//
// Device failures never stop the render thread. They are returned from
// [Player.Exec], published as [DeviceFailure] and logged.
package player
