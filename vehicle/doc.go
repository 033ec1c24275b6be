// Package vehicle implements the 2D vehicle motion model: scalar thrust along
// a heading in degrees, per-tick friction on thrust and drag on velocity, a
// speed cap applied before and after thrust, and a top-left anchored AABB
// collision test.
//
// Update assumes a fixed virtual timestep. All tuning constants are per tick;
// callers pace ticks in real time (see engine.ClockScheduler) rather than
// passing a frame delta.
//
// Tuning values are not validated. A non-positive MaxSpeed, a Friction or Drag
// outside (0, 1], or NaN inputs produce degenerate but well-defined motion,
// and NaN/Inf propagate into the state unchanged.
package vehicle
