package main

import (
	"fmt"

	"github.com/Readm/sortviz/engine"
	"github.com/Readm/sortviz/visual"
)

// Palette shared by every renderer.
var (
	ColorBackground   = visual.Color{R: 10, G: 12, B: 20}
	ColorText         = visual.Color{R: 255, G: 255, B: 255}
	ColorTextAccent   = visual.Color{R: 100, G: 255, B: 255}
	ColorTextShadow   = visual.Color{R: 0, G: 0, B: 0}
	ColorProgressBG   = visual.Color{R: 40, G: 40, B: 50}
	ColorProgressFill = visual.Color{R: 0, G: 255, B: 100}

	colorSettled   = visual.Color{R: 255, G: 255, B: 255}
	colorPrimary   = visual.Color{R: 255, G: 50, B: 50}
	colorSecondary = visual.Color{R: 255, G: 0, B: 255}
)

// Bar geometry shared by the desktop and web renderers.
const (
	BarUnitHeight     = 7.0
	BarBottomMargin   = 30.0
	ProgressBarHeight = 25.0
	TextScale         = 2.0
	TextLineHeight    = 18.0

	gradientMax = 100.0
)

// AlgorithmInfo is the static text block describing an algorithm.
type AlgorithmInfo struct {
	Name       string
	Complexity string
	Mechanism  string
}

var algorithmInfos = map[engine.Algorithm]AlgorithmInfo{
	engine.Bubble: {
		Name:       "Bubble Sort",
		Complexity: "O(N^2) - Slow",
		Mechanism:  "Swaps adjacent elements repeatedly.",
	},
	engine.Selection: {
		Name:       "Selection Sort",
		Complexity: "O(N^2) - Slow",
		Mechanism:  "Finds the smallest item and moves it.",
	},
	engine.Insertion: {
		Name:       "Insertion Sort",
		Complexity: "O(N^2) - OK for small lists",
		Mechanism:  "Builds sorted array one item at a time.",
	},
	engine.Quick: {
		Name:       "Quick Sort",
		Complexity: "O(N log N) - Fast",
		Mechanism:  "Divides list around a pivot point.",
	},
	engine.Merge: {
		Name:       "Merge Sort",
		Complexity: "O(N log N) - Stable",
		Mechanism:  "Divides list in half, sorts, and merges.",
	},
}

// InfoFor returns the static description of an algorithm.
func InfoFor(algo engine.Algorithm) AlgorithmInfo {
	return algorithmInfos[algo]
}

// gradientColor maps an element value to its blue-gradient base color.
func gradientColor(value int) visual.Color {
	ratio := float64(value) / gradientMax
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return visual.Color{
		R: uint8(30 + ratio*100),
		G: uint8(30 + ratio*200),
		B: uint8(150 + ratio*105),
	}
}

// barColor resolves the display color of bar k: gradient base, whitened
// when the element is settled or the whole array is sorted, overridden by
// the highlight role of the current step.
func barColor(k, value int, view engine.View, sorted, shuffling bool, shuffleCursor int) visual.Color {
	c := gradientColor(value)
	if sorted {
		c = colorSettled
	} else if view.Settled != nil && view.Settled(k) {
		c = colorSettled
	}

	if shuffling {
		if k == shuffleCursor {
			c = colorPrimary
		}
		return c
	}
	if sorted {
		return c
	}
	for _, idx := range view.Primary {
		if k == idx {
			c = colorPrimary
		}
	}
	for _, idx := range view.Secondary {
		if k == idx {
			c = colorSecondary
		}
	}
	if view.Recent == k {
		c = colorSettled
	}
	return c
}

// statusLines formats the text block. Lines containing a colon render in
// the accent color; the empty line is a half-height spacer.
func statusLines(info AlgorithmInfo, stats *RunStats, delayMS int, shuffling bool) []string {
	if shuffling {
		return []string{"STATUS: Shuffling..."}
	}
	return []string{
		"ALGORITHM:  " + info.Name,
		"COMPLEXITY: " + info.Complexity,
		"HOW IT WORKS: " + info.Mechanism,
		"",
		fmt.Sprintf("Comparisons:  %d", stats.Comparisons),
		fmt.Sprintf("Swaps:        %d", stats.Swaps),
		fmt.Sprintf("Real CPU Time:%.3fms", stats.LogicMillis()),
		fmt.Sprintf("Delay Added:  %dms", delayMS),
	}
}
