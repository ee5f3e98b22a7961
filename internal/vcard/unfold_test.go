package vcard

import (
	"reflect"
	"testing"
)

func TestUnfoldLines_JoinsCRLFContinuation(t *testing.T) {
	raw := "NOTE:This note is split\r\n across two lines\r\nTEL:555"
	lines := UnfoldLines(raw)
	expected := []string{"NOTE:This note is split across two lines", "TEL:555"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestUnfoldLines_JoinsLFContinuation(t *testing.T) {
	raw := "NOTE:part one\n part two"
	lines := UnfoldLines(raw)
	if len(lines) != 1 || lines[0] != "NOTE:part one part two" {
		t.Errorf("Expected one joined line, got %v", lines)
	}
}

func TestUnfoldLines_TabContinuation(t *testing.T) {
	raw := "NOTE:left\r\n\tright"
	lines := UnfoldLines(raw)
	if len(lines) != 1 || lines[0] != "NOTE:leftright" {
		t.Errorf("Expected tab continuation joined, got %v", lines)
	}
}

func TestUnfoldLines_SkipsBlankLines(t *testing.T) {
	raw := "BEGIN:VCARD\r\n\r\n   \r\nFN:Ada\r\nEND:VCARD\r\n"
	lines := UnfoldLines(raw)
	expected := []string{"BEGIN:VCARD", "FN:Ada", "END:VCARD"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestUnfoldLines_PreservesOrder(t *testing.T) {
	raw := "BEGIN:VCARD\nFN:Ada\nTEL:1\nEND:VCARD\nBEGIN:VCARD\nFN:Bob\nEND:VCARD"
	lines := UnfoldLines(raw)
	if len(lines) != 7 {
		t.Fatalf("Expected 7 lines, got %d: %v", len(lines), lines)
	}
	if lines[1] != "FN:Ada" || lines[5] != "FN:Bob" {
		t.Errorf("Expected source order preserved, got %v", lines)
	}
}

func TestUnfoldLines_EmptyInput(t *testing.T) {
	if lines := UnfoldLines(""); len(lines) != 0 {
		t.Errorf("Expected no lines, got %v", lines)
	}
}
