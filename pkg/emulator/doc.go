// Package emulator provides an emulated vehicle behind the broker's hardware
// client contract.
//
// The Client keeps the current vehicle state, accepts forwarded writes and
// hands every sample back through the registered push callback from a single
// delivery goroutine, the way a real vehicle bus would report the new state
// after applying a write.
package emulator
