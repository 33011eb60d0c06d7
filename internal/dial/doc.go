// Package dial implements a rotary weight meter: an engine that turns pointer
// drags into a bounded rotation and integer value, and a renderer that turns
// that rotation into draw commands for any Canvas.
package dial
