/*
Package hdlsim implements the discrete-event simulation kernel of a
hardware description language simulator, conforming to the classical
"simulation cycle" described in IEEE-1076 section 12.6.4.

Given an elaborated design — a flat set of signal declarations and
processes, see Design — the kernel drives simulated time forward by
repeatedly draining a time-ordered event queue, firing processes, and
committing per-signal driver waveforms. It does not parse, elaborate,
or code-generate a design; those are external collaborators reached
only through the Design and Codegen interfaces.
*/
package hdlsim
