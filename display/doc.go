// Package display renders a message onto a pixel sink.
//
// Sink is the boundary to the LED matrix driver. Render performs the fixed
// sequence clear, label, up to two lines, present. Two software sinks are
// provided: Terminal prints frames as text, Framebuffer rasterizes them into
// a PNG file.
package display
