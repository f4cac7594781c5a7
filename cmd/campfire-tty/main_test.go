package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestChannelSaturates(t *testing.T) {
	cases := []struct {
		in   float32
		want int32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{4, 255},
	}
	for _, tc := range cases {
		if got := channel(tc.in); got != tc.want {
			t.Errorf("channel(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTermColor(t *testing.T) {
	if got, want := termColor(1, 0.5, 0), tcell.NewRGBColor(255, 128, 0); got != want {
		t.Fatalf("termColor = %v, want %v", got, want)
	}
}
