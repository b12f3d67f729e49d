// Package patchcord is a signal-flow engine for building software modular
// synthesizers. A patch is a set of stateful modules (oscillators, envelopes,
// filters, delay lines, sequencers...) whose input and output ports are plain
// exported float32 fields. Ports are connected either with Wires, which copy
// one port into another every tick, or by composite modules that perform the
// assignments in their own Update.
//
// All modules of a patch live in a Rack. The Rack advances the whole patch one
// sample at a time: every tick it clears the stereo mix bus, calls Update on
// every module in registration order and emits the frame the Speaker modules
// accumulated. Registration order is the only ordering mechanism there is; a
// module reading a port written by a module that comes later in the rack sees
// that port's previous-tick value. This resolves feedback loops without any
// cycle detection, at the price of a one-tick delay on backward edges.
package patchcord

// Module is one processing unit of a patch. Update is called once per tick by
// the Rack; it must read all of the module's inputs and overwrite all of its
// outputs exactly once, using only the module's own prior-tick state and port
// references supplied at construction. Update runs on the realtime audio
// thread, so it must not block or allocate.
type Module interface {
	Update()
}
