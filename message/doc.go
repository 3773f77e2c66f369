// Package message maps parse results and errors onto the two text lines shown
// under the route label. Compose is a pure function of its inputs.
package message
