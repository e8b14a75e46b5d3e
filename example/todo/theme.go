package main

import (
	"image/color"
	"log"

	"gioui.org/font/gofont"
	"gioui.org/widget"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// hex parses a color literal, falling back to black.
func hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		log.Printf("parsing color %q: %v", s, err)
		return color.NRGBA{A: 255}
	}
	return ToNRGBA(c)
}

// Theme wraps the material.Theme with the colors of the list.
type Theme struct {
	*material.Theme
	Danger  color.NRGBA
	Success color.NRGBA
	// Muted is used for secondary text.
	Muted color.NRGBA
	White color.NRGBA
}

// NewTheme instantiates the list theme.
func NewTheme() *Theme {
	th := &Theme{
		Theme:   material.NewTheme(gofont.Collection()),
		Danger:  hex("#E6171E"),
		Success: hex("#008738"),
		Muted:   hex("#6E7681"),
		White:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	th.Palette.ContrastBg = th.Success
	return th
}

var (
	// DeleteIcon is the material design delete indicator.
	DeleteIcon = mustIcon(icons.ActionDelete)
	// ArchiveIcon is the material design archive indicator.
	ArchiveIcon = mustIcon(icons.ContentArchive)
)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return icon
}
