// Package ui provides the Bubble Tea terminal frontend for restdemo.
package ui
