package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lixenwraith/vi-racer/engine"
)

// formatSummary renders a run as one line, collisions in red when the terminal has color
func formatSummary(out *termenv.Output, l engine.Log) string {
	s := l.Summary
	name := l.Scenario
	if name == "" {
		name = "scenario"
	}

	var b strings.Builder
	b.WriteString(out.String(name).Bold().String())
	fmt.Fprintf(&b, " [%s] ticks=%d max_speed=%.3f distance=%.2f final=(%.2f, %.2f) heading=%.1f ",
		l.Preset, s.Ticks, s.MaxSpeed, s.Distance, s.Final.X, s.Final.Y, s.Final.Heading)

	if s.CollisionTicks == 0 {
		b.WriteString(out.String("clean").Foreground(out.Color("2")).String())
	} else {
		msg := fmt.Sprintf("collisions=%d first=%d", s.CollisionTicks, s.FirstCollision)
		b.WriteString(out.String(msg).Foreground(out.Color("1")).Bold().String())
	}
	return b.String()
}
